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

// Package storage persists boards and play sessions.  Working
// state (sessions and their step history, plus a read-through
// copy of the board catalog) lives in redis; the board catalog
// itself lives in postgres.
//
// The execute wrappers in this file panic on storage failure.
// They are meant to be called from handler code that recovers at
// dispatch level, the same place that maps board errors to
// responses.
package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/garyburd/redigo/redis"
	"github.com/jackc/pgx"
	"github.com/ninecheck/ninecheck.go/dbprep"
	"github.com/rs/zerolog/log"
)

// Connect prepares the database and opens the cache and database
// connections.  It returns identifiers for both, for logging.
func Connect() (cacheId, databaseId string, err error) {
	// make sure the database is initialized
	if err = dbprep.EnsureData(); err != nil {
		err = fmt.Errorf("Couldn't initialize database: %v", err)
		return
	}

	rdInit()
	rdMutex.Lock()
	defer rdMutex.Unlock()
	cacheId, err = rdConnect()
	if err != nil {
		return
	}

	pgInit()
	databaseId, err = pgConnect()
	if err != nil {
		return
	}
	return
}

// Close shuts the cache and database connections.
func Close() {
	rdMutex.Lock()
	defer rdMutex.Unlock()
	pgClose()
	rdClose()
}

/*

cache using Redis

*/

// Redis connection data
var (
	rdc     redis.Conn // open connection, if any
	rdUrl   string     // URL for the open connection
	rdEnv   string     // key prefix separating environments
	rdMutex sync.Mutex // prevent concurrent connection use
)

// rdInit - look up Redis info from the environment
func rdInit() {
	url := os.Getenv("REDISTOGO_URL")
	env := os.Getenv("REDISTOGO_ENV")
	if url == "" {
		rdUrl = "redis://localhost:6379/"
	} else {
		rdUrl = url
	}
	if env == "" {
		if url == "" {
			rdEnv = "local"
		} else {
			rdEnv = "dev"
		}
	} else {
		rdEnv = env
	}
}

// rdConnect: connect to the configured Redis URL.  Returns the
// connection id, if successful, an error otherwise.
func rdConnect() (string, error) {
	conn, err := redis.DialURL(rdUrl)
	if err != nil {
		err = fmt.Errorf("Couldn't connect to cache at %q: %v", rdUrl, err)
		return "", err
	}
	log.Info().Str("url", rdUrl).Str("env", rdEnv).Msg("connected to cache")
	rdc = conn
	return rdUrl, nil
}

// rdClose: close the open Redis connection, if any.
func rdClose() {
	if rdc != nil {
		rdc.Close()
		rdc = nil
	}
}

// rdExecute: execute the body against the cache, holding the
// cache mutex.  Because Redis connections can go away without
// warning, the connection is pinged first and reopened if the
// ping fails.  Errors in execution panic back to dispatch level.
func rdExecute(body func(conn redis.Conn) error) {
	// wrap the body against runtime and cache failures
	wrapper := func(conn redis.Conn) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during rdExecute: %v", r)
				}
				log.Err(err).Msg("cache body panicked")
			}
		}()
		if _, err := rdc.Do("PING"); err != nil {
			log.Err(err).Msg("cache ping failed, reconnecting")
			rdClose()
			if _, err = rdConnect(); err != nil {
				return fmt.Errorf("Failed to reconnect to cache at %q", rdUrl)
			}
		}
		// connection is good; run the body
		return body(rdc)
	}
	// grab the mutex and execute the body
	rdMutex.Lock()
	defer func(err error) {
		rdMutex.Unlock()
		if err != nil {
			panic(err)
		}
	}(wrapper(rdc))
}

/*

persistence using Postgres

*/

// Postgres connection data
var (
	pgConn *pgx.Conn // open database, if any
	pgUrl  string    // URL for the open connection
)

// pgInit - look up Postgres info from the environment
func pgInit() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		pgUrl = "postgres://localhost/ninecheck?sslmode=disable"
	} else {
		pgUrl = url
	}
}

// pgConnect: open the Postgres database.  Returns the connection
// id, if successful, an error otherwise.
func pgConnect() (string, error) {
	cfg, err := pgx.ParseURI(pgUrl)
	if err != nil {
		return "", fmt.Errorf("Parse failure on Postgres URI %q: %v", pgUrl, err)
	}
	conn, err := pgx.Connect(cfg)
	if err != nil {
		return "", fmt.Errorf("Couldn't connect to db at %q: %v", pgUrl, err)
	}
	log.Info().Str("url", pgUrl).Msg("connected to database")
	pgConn = conn
	return pgUrl, nil
}

// pgClose: close the open Postgres connection, if any.
func pgClose() {
	if pgConn != nil {
		pgConn.Close()
		pgConn = nil
	}
}

// pgExecute: execute the body inside a single transaction.  If
// the body errs out, the transaction is rolled back, otherwise
// it's committed.  Errors panic back to dispatch level.
func pgExecute(body func(tx *pgx.Tx) error) {
	// wrap the body against runtime and database failures
	wrapper := func(tx *pgx.Tx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("Caught panic during pgExecute: %v", r)
				}
				log.Err(err).Msg("database body panicked")
			}
		}()
		return body(tx)
	}
	// get the transaction
	tx, err := pgConn.Begin()
	if err != nil {
		panic(fmt.Errorf("Can't open a transaction against database: %v", err))
	}
	// execute the body in the transaction
	defer func(err error) {
		if err != nil {
			tx.Rollback()
			panic(err)
		}
		tx.Commit()
	}(wrapper(tx))
}
