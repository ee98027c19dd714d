package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/LeeDigitalWorks/zapmock/cmd"

	"github.com/getsentry/sentry-go"
)

func main() {
	err := sentry.Init(sentry.ClientOptions{
		SampleRate: 0.1,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "sentry.Init: %v", err)
	}
	// Flush buffered events before the program terminates.
	defer sentry.Flush(2 * time.Second)

	flag.Parse()

	cmd.Execute()
}
