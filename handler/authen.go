package handler

import (
	"errors"
	"time"

	"oneclickticket/constants"
	"oneclickticket/database"
	"oneclickticket/helper"
	"oneclickticket/model"
	"oneclickticket/utils"

	"github.com/gofiber/fiber/v2"
)

const accessTokenCookie = "access_token"

func Register(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.RegisterInput)

	existing, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
	if existing != nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, constants.USERNAME_EXISTED, errors.New("username already exists"))
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
	account := model.Account{Username: input.Username, Password: hash, Role: constants.ROLE_STAFF}
	if err := database.DB.WithContext(c.UserContext()).Create(&account).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, account)
}

func Login(c *fiber.Ctx) error {
	input := c.Locals("input").(*model.LoginInput)

	account, err := helper.GetUserByUsername(input.Username)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
	// same answer for unknown user and wrong password
	if account == nil || !helper.CheckPasswordHash(input.Password, account.Password) {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.LOGIN_FAILED, errors.New("invalid credentials"))
	}

	token, err := helper.GenerateAccessToken(model.TokenClaim{
		AccountId: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     accessTokenCookie,
		Value:    token.AccessToken,
		Path:     "/",
		Expires:  time.Unix(token.ExpiresAt, 0),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return utils.SuccessResponse(c, fiber.StatusOK, token)
}

func Logout(c *fiber.Ctx) error {
	c.ClearCookie(accessTokenCookie)
	return utils.SuccessResponse(c, fiber.StatusOK, nil)
}

func Me(c *fiber.Ctx) error {
	claim, ok := helper.GetInfoAccountFromToken(c)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, errors.New("no account in token"))
	}
	var account model.Account
	if err := database.DB.WithContext(c.UserContext()).First(&account, claim.AccountId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.INVALID_TOKEN, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, account)
}

func GetAccounts(c *fiber.Ctx) error {
	var accounts model.Accounts
	if err := database.DB.WithContext(c.UserContext()).Order("id").Find(&accounts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, accounts)
}
