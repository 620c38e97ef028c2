package auth

import (
	"errors"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// SignatureHeader is the header LINE uses to carry the body signature.
const SignatureHeader = "x-line-signature"

// SignatureMiddleware rejects requests whose body is not signed with the channel secret.
// The signature covers the body bytes as sent, before any Content-Encoding is undone.
// Rejected requests never reach the next handler.
func SignatureMiddleware(verifier *SignatureVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := verifier.Verify(c.BodyRaw(), c.Get(SignatureHeader))
		if err == nil {
			return c.Next()
		}
		if errors.Is(err, ErrMissingSecret) {
			zerolog.Ctx(c.UserContext()).Error().Msg("LINE_CHANNEL_SECRET is not set; rejecting webhook")
		}
		return richerrors.Error{
			ExternalMsg: "Unauthorized",
			Err:         err,
			Code:        fiber.StatusUnauthorized,
		}
	}
}
