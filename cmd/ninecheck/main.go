// ninecheck.go - a web-based Sudoku board checker and play space.
// Copyright (C) 2026 the ninecheck.go authors.
//
// This program is free software; you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation; either version 2 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License along
// with this program; if not, write to the Free Software Foundation, Inc.,
// 51 Franklin Street, Fifth Floor, Boston, MA 02110-1301 USA.

// Web server for the ninecheck board API.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/ninecheck/ninecheck.go/storage"
	"github.com/rs/zerolog/log"
)

func main() {
	cacheId, databaseId, err := storage.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("connect to storage")
	}
	defer storage.Close()
	log.Info().Str("cache", cacheId).Str("database", databaseId).Msg("storage ready")

	// the default engine's recovery middleware is what turns
	// storage panics into 500 responses
	e := gin.Default()
	v1 := e.Group("/api").Group("/v1")
	v1.GET("/boards", listHandler)
	v1.POST("/boards", saveBoardHandler)
	v1.GET("/boards/:id", fetchHandler)
	v1.GET("/session", stateHandler)
	v1.GET("/session/check", checkHandler)
	v1.POST("/session/cell", setCellHandler)
	v1.POST("/session/undo", undoHandler)
	v1.POST("/session/reset", resetHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := e.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("run server")
	}
}
