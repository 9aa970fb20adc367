// Copyright 2016 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package adminserver

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/unrolled/render"
	"github.com/urfave/negroni"
)

// NewHandler builds the admin server's HTTP handler: a gorilla/mux
// router wrapped in negroni's default middleware chain (panic recovery
// plus request logging), following pd/server/api/router.go's shape.
func NewHandler(reg *Registry) http.Handler {
	rd := render.New(render.Options{IndentJSON: true})
	router := mux.NewRouter()

	router.Handle("/api/v1/transactions", newTxnListHandler(reg, rd)).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/transactions/{transaction_id}", newTxnDescribeHandler(reg, rd).Get).Methods(http.MethodGet)
	router.Handle("/metrics", promhttp.Handler())

	n := negroni.Classic()
	n.UseHandler(router)
	return n
}
