package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"fabu/pkg/api"
	"fabu/pkg/server"
	"fabu/pkg/service"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "fabu",
	})

	var (
		port   = flag.String("port", "8080", "Server port")
		apiURL = flag.String("api-url", api.DefaultBaseURL, "Budget store base URL")
	)
	flag.Parse()

	client := api.New(*apiURL, &http.Client{Timeout: 30 * time.Second})
	svc := service.New(client, logger)
	srv := server.New(svc, logger)

	addr := fmt.Sprintf("0.0.0.0:%s", *port)
	logger.Info("starting server", "addr", addr, "store", *apiURL)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
