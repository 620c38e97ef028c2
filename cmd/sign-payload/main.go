package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/DIMO-Network/line-shop-bot/internal/auth"
	"github.com/DIMO-Network/server-garage/pkg/logging"
)

// sign-payload prints the x-line-signature for a webhook body so it can be replayed with curl:
//
//	curl -H "x-line-signature: $(sign-payload -file body.json)" --data-binary @body.json localhost:8080/webhook
func main() {
	logger := logging.GetAndSetDefaultLogger("sign-payload")

	file := flag.String("file", "-", "webhook body to sign, - for stdin")
	secret := flag.String("secret", os.Getenv("LINE_CHANNEL_SECRET"), "channel secret, defaults to LINE_CHANNEL_SECRET")
	flag.Parse()

	if *secret == "" {
		logger.Fatal().Msg("no channel secret given")
	}

	var (
		body []byte
		err  error
	)
	if *file == "-" {
		body, err = io.ReadAll(os.Stdin)
	} else {
		body, err = os.ReadFile(*file)
	}
	if err != nil {
		logger.Fatal().Err(err).Str("file", *file).Msg("failed to read body")
	}

	fmt.Println(auth.Sign(*secret, body))
}
