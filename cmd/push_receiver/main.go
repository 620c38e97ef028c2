package main

import (
	"encoding/json"
	"flag"
	"strings"

	"github.com/DIMO-Network/line-shop-bot/internal/clients/line"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/gofiber/fiber/v2"
)

// push_receiver stands in for the LINE Messaging API during local runs.
// Point LINE_API_BASE_URL at it and every push is logged instead of delivered.
func main() {
	logger := logging.GetAndSetDefaultLogger("push-receiver")

	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	app.Post("/v2/bot/message/push", func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Get(fiber.HeaderAuthorization), "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authentication failed"})
		}
		var payload struct {
			To       string            `json:"to"`
			Messages []json.RawMessage `json:"messages"`
		}
		if err := json.Unmarshal(c.Body(), &payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "The request body has 1 error(s)"})
		}
		logger.Info().
			Str("to", payload.To).
			Str("retry_key", c.Get(line.RetryKeyHeader)).
			Int("message_count", len(payload.Messages)).
			RawJSON("messages", c.Body()).
			Msg("Push received")
		return c.JSON(fiber.Map{})
	})

	app.Get("/v2/bot/profile/:userId", func(c *fiber.Ctx) error {
		userID := c.Params("userId")
		logger.Info().Str("user_id", userID).Msg("Profile requested")
		return c.JSON(line.Profile{
			UserID:      userID,
			DisplayName: "Test User " + userID,
		})
	})

	logger.Info().Str("addr", *addr).Msg("Push receiver listening")
	if err := app.Listen(*addr); err != nil {
		logger.Fatal().Err(err).Msg("Push receiver stopped")
	}
}
