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

package dbprep

import (
	"os"

	"github.com/garyburd/redigo/redis"
)

// ClearCache flushes everything from the redis cache.
func ClearCache() error {
	url := os.Getenv("REDISTOGO_URL")
	if url == "" {
		url = "redis://localhost:6379/"
	}
	conn, err := redis.DialURL(url)
	if err != nil {
		return err
	}
	_, err = conn.Do("FLUSHALL")
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}
