package middleware

import (
	"errors"

	"oneclickticket/constants"
	"oneclickticket/helper"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
)

type Capability int

const (
	Anonymous Capability = iota
	Authenticated
	Admin
)

func (c Capability) String() string {
	switch c {
	case Anonymous:
		return "anonymous"
	case Authenticated:
		return "authenticated"
	case Admin:
		return "admin"
	}
	return "unknown"
}

// Policy maps an operation name to the capability a caller needs for it.
type Policy map[string]Capability

var writeOperations = []string{
	constants.OP_BOOKING_CREATE, constants.OP_BOOKING_EDIT, constants.OP_BOOKING_DELETE,
	constants.OP_CINEMA_CREATE, constants.OP_CINEMA_EDIT, constants.OP_CINEMA_DELETE,
	constants.OP_MOVIE_CREATE, constants.OP_MOVIE_EDIT, constants.OP_MOVIE_DELETE,
}

// NewPolicy builds the operation table. Only the list pages need a signed in user
// unless requireAuthForWrites also closes every create, edit and delete operation.
func NewPolicy(requireAuthForWrites bool) Policy {
	p := Policy{
		constants.OP_BOOKING_LIST:   Authenticated,
		constants.OP_BOOKING_DETAIL: Anonymous,
		constants.OP_BOOKING_TICKET: Anonymous,
		constants.OP_CINEMA_LIST:    Authenticated,
		constants.OP_CINEMA_DETAIL:  Anonymous,
		constants.OP_MOVIE_LIST:     Authenticated,
		constants.OP_MOVIE_DETAIL:   Anonymous,
		constants.OP_ACCOUNT_LIST:   Admin,
		constants.OP_CHANGE_FEED:    Authenticated,
	}
	for _, op := range writeOperations {
		p[op] = Anonymous
		if requireAuthForWrites {
			p[op] = Authenticated
		}
	}
	return p
}

// Required returns the capability for op. Operations missing from the table need a signed in user.
func (p Policy) Required(op string) Capability {
	if capability, ok := p[op]; ok {
		return capability
	}
	return Authenticated
}

// Authorize enforces p for op.
func Authorize(p Policy, op string) fiber.Handler {
	required := p.Required(op)
	return func(c *fiber.Ctx) error {
		if required == Anonymous {
			return c.Next()
		}

		jwtToken, err := authenticate(c)
		if errors.Is(err, errNoToken) {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.MISSING_TOKEN, err)
		}
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
		}
		c.Locals("user", jwtToken)

		if required == Admin {
			claim, _ := helper.ClaimFromToken(jwtToken)
			if claim.Role != constants.ROLE_ADMIN {
				return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_PERMISSION, errors.New("admin role required"))
			}
		}
		return c.Next()
	}
}
