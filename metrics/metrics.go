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

// Package metrics exposes request metrics of the Rosetta API.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "stacks_rosetta_requests_total",
	Help: "Number of Rosetta API requests by endpoint and status code",
}, []string{"endpoint", "status"})

var requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "stacks_rosetta_request_duration_seconds",
	Help:    "Duration of Rosetta API requests by endpoint",
	Buckets: prometheus.DefBuckets,
}, []string{"endpoint"})

// Middleware instruments every request with a counter and a latency
// histogram, keyed on the route path.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {

			start := time.Now()
			err := next(ctx)

			endpoint := ctx.Path()
			status := ctx.Response().Status
			if err != nil {
				httpErr, ok := err.(*echo.HTTPError)
				if ok {
					status = httpErr.Code
				}
			}

			requestsTotal.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
			requestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

			return err
		}
	}
}
