// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/ziflex/lecho/v2"

	api "github.com/optakt/stacks-rosetta/api/rosetta"
	"github.com/optakt/stacks-rosetta/metrics"
	"github.com/optakt/stacks-rosetta/models/stacks"
	"github.com/optakt/stacks-rosetta/rosetta/configuration"
	"github.com/optakt/stacks-rosetta/rosetta/retriever"
	"github.com/optakt/stacks-rosetta/rosetta/transactions"
	"github.com/optakt/stacks-rosetta/rosetta/validator"
	"github.com/optakt/stacks-rosetta/stacks/node"
	"github.com/optakt/stacks-rosetta/storage/postgres"
)

const (
	success = 0
	failure = 1
)

func main() {
	os.Exit(run())
}

func run() int {

	// Signal catching for clean shutdown.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)

	// Command line parameter initialization.
	var (
		flagChain string
		flagDSN   string
		flagLevel string
		flagNode  string
		flagPort  uint16
	)

	pflag.StringVarP(&flagChain, "chain", "c", string(stacks.Testnet), "chain to serve the Rosetta API for")
	pflag.StringVarP(&flagDSN, "dsn", "d", "host=127.0.0.1 user=stacks dbname=stacks_index", "Postgres DSN of the chain index")
	pflag.StringVarP(&flagLevel, "level", "l", "info", "log output level")
	pflag.StringVarP(&flagNode, "node", "n", "http://127.0.0.1:20443", "API URL of the upstream Stacks node")
	pflag.Uint16VarP(&flagPort, "port", "p", 8080, "port to host the Rosetta API on")

	pflag.Parse()

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	// Check if the configured chain is valid.
	params, ok := stacks.ChainParams[stacks.Chain(flagChain)]
	if !ok {
		log.Error().Str("chain", flagChain).Msg("invalid chain for params")
		return failure
	}

	// Initialize the index database connection.
	db, err := postgres.Open(flagDSN)
	if err != nil {
		log.Error().Err(err).Msg("could not connect to index database")
		return failure
	}

	// Rosetta API initialization.
	config := configuration.New(params.Chain)
	validate := validator.New(params)
	parse := transactions.NewParser(params, validate)
	index := postgres.NewIndex(db)
	retrieve := retriever.New(index)
	client := node.New(log, flagNode)
	dctrl := api.NewData(config, validate, retrieve)
	cctrl := api.NewConstruction(config, validate, parse, retrieve, client)

	elog := lecho.From(log)
	server := echo.New()
	server.HideBanner = true
	server.HidePort = true
	server.Logger = elog
	server.Use(lecho.Middleware(lecho.Config{Logger: elog}))
	server.Use(metrics.Middleware())

	server.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	server.POST("/rosetta/v1/network/list", dctrl.Networks)
	server.POST("/rosetta/v1/network/options", dctrl.Options)
	server.POST("/rosetta/v1/network/status", dctrl.Status)
	server.POST("/rosetta/v1/block", dctrl.Block)
	server.POST("/rosetta/v1/block/transaction", dctrl.Transaction)
	server.POST("/rosetta/v1/mempool", dctrl.Mempool)
	server.POST("/rosetta/v1/mempool/transaction", dctrl.MempoolTransaction)
	server.POST("/rosetta/v1/account/balance", dctrl.Balance)

	server.POST("/rosetta/v1/construction/derive", cctrl.Derive)
	server.POST("/rosetta/v1/construction/preprocess", cctrl.Preprocess)
	server.POST("/rosetta/v1/construction/metadata", cctrl.Metadata)
	server.POST("/rosetta/v1/construction/payloads", cctrl.Payloads)
	server.POST("/rosetta/v1/construction/parse", cctrl.Parse)
	server.POST("/rosetta/v1/construction/combine", cctrl.Combine)
	server.POST("/rosetta/v1/construction/hash", cctrl.Hash)
	server.POST("/rosetta/v1/construction/submit", cctrl.Submit)

	// This section launches the main executing components in their own
	// goroutine, so they can run concurrently. Afterwards, we wait for an
	// interrupt signal in order to proceed with the next section.
	done := make(chan struct{})
	failed := make(chan struct{})
	go func() {
		log.Info().Str("chain", flagChain).Msg("Stacks Rosetta Server starting")
		err := server.Start(fmt.Sprint(":", flagPort))
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn().Err(err).Msg("Stacks Rosetta Server failed")
			close(failed)
		} else {
			close(done)
		}
		log.Info().Msg("Stacks Rosetta Server stopped")
	}()

	select {
	case <-sig:
		log.Info().Msg("Stacks Rosetta Server stopping")
	case <-done:
		log.Info().Msg("Stacks Rosetta Server done")
	case <-failed:
		log.Warn().Msg("Stacks Rosetta Server aborted")
		return failure
	}
	go func() {
		<-sig
		log.Warn().Msg("forcing exit")
		os.Exit(1)
	}()

	// The following code starts a shutdown with a certain timeout and makes
	// sure that the main executing components are shutting down within the
	// allocated shutdown time. Otherwise, we will force the shutdown and log
	// an error.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	err = server.Shutdown(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not shut down Rosetta API")
		return failure
	}

	return success
}
