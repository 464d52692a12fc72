// Command translate runs one translation from the command line and prints
// the structured result as JSON. With -image, the generated illustration is
// written next to the output.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/memelingo-backend/internal/app"
	"github.com/heartmarshall/memelingo-backend/internal/config"
	"github.com/heartmarshall/memelingo-backend/internal/service/session"
)

func main() {
	imagePath := flag.String("image", "", "write the generated illustration to this file")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall deadline")
	flag.Parse()

	text := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if text == "" {
		fmt.Fprintln(os.Stderr, "usage: translate [-image out.jpg] <text>")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	translator, illustrator, err := app.BuildProvider(ctx, cfg.Provider, logger)
	if err != nil {
		logger.Error("init provider", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *imagePath == "" {
		illustrator = nil
	}

	svc := session.NewService(logger, translator, illustrator)
	if err := svc.Submit(ctx, text); err != nil {
		logger.Error("submit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	svc.Wait()

	st := svc.State()
	if st.LastError != "" {
		fmt.Fprintln(os.Stderr, st.LastError)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(st.Result, "", "  ")
	if err != nil {
		logger.Error("marshal result", slog.String("error", err.Error()))
		os.Exit(1)
	}
	fmt.Println(string(out))

	if *imagePath != "" && st.Illustration != nil {
		if err := os.WriteFile(*imagePath, st.Illustration.Data, 0o644); err != nil {
			logger.Error("write illustration",
				slog.String("path", *imagePath),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		logger.Info("illustration written", slog.String("path", *imagePath))
	}
}
