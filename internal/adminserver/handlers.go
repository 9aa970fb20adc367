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
	"strconv"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type txnListHandler struct {
	reg *Registry
	rd  *render.Render
}

func newTxnListHandler(reg *Registry, rd *render.Render) *txnListHandler {
	return &txnListHandler{reg: reg, rd: rd}
}

func (h *txnListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.rd.JSON(w, http.StatusOK, h.reg.List())
}

type txnDescribeHandler struct {
	reg *Registry
	rd  *render.Render
}

func newTxnDescribeHandler(reg *Registry, rd *render.Render) *txnDescribeHandler {
	return &txnDescribeHandler{reg: reg, rd: rd}
}

// Get renders one transaction's Describe() string plus its structured
// identity fields, so an operator can grep either representation.
func (h *txnDescribeHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	transactionID, err := strconv.ParseUint(vars["transaction_id"], 10, 64)
	if err != nil {
		h.rd.JSON(w, http.StatusBadRequest, err.Error())
		return
	}

	c, ok := h.reg.Get(transactionID)
	if !ok {
		h.rd.JSON(w, http.StatusNotFound, "transaction not found")
		return
	}

	h.rd.JSON(w, http.StatusOK, map[string]interface{}{
		"describe":       c.Describe(),
		"transaction_id": c.TransactionID(),
		"read_id":        c.ReadID(),
		"commit_id":      c.CommitID(),
		"epoch_id":       c.EpochID(),
		"thread_id":      c.ThreadID(),
		"is_written":     c.IsWritten(),
		"insert_count":   c.InsertCount(),
		"result":         c.Result().String(),
	})
}
