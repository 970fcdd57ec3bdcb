package model

type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type FieldErrors []FieldError

func (e FieldErrors) Has(field string) bool {
	return e.Get(field) != nil
}

func (e FieldErrors) Get(field string) *FieldError {
	for i := range e {
		if e[i].Field == field {
			return &e[i]
		}
	}
	return nil
}

type SelectOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// FormView is what the create and edit pages render.
type FormView struct {
	Model     any                       `json:"model"`
	Errors    FieldErrors               `json:"errors"`
	Options   map[string][]SelectOption `json:"options,omitempty"`
	CsrfToken string                    `json:"csrfToken,omitempty"`
}

type MovieIndex struct {
	Movies          []Movie        `json:"movies"`
	Count           int64          `json:"count"`
	AverageDuration *float64       `json:"averageDuration,omitempty"`
	GenreFilter     *GenreType     `json:"genreFilter,omitempty"`
	SearchTerm      string         `json:"searchTerm"`
	SortOrder       string         `json:"sortOrder"`
	Genres          []SelectOption `json:"genres"`
}

type Problem struct {
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail"`
}
