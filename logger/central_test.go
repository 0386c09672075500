// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/test"
)

func TestCentralLogger(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	logger.Logf(logger.Allow, "test2", "this is test %d", 2)
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is test 2\n"))

	count := 0
	logger.BorrowLog(func(e []logger.Entry) {
		count = len(e)
	})
	test.ExpectEquality(t, count, 2)

	logger.Clear()
}

func TestColorizer(t *testing.T) {
	tw := &test.Writer{}
	c := logger.NewColorizer(tw)

	c.Write([]byte("first line\n"))
	test.ExpectSuccess(t, tw.Compare("first line\n"))

	tw.Clear()
	c.Write([]byte("first line\nsecond line\n"))
	test.ExpectSuccess(t, tw.Compare("first line\n\033[2;31msecond line\n\033[0m"))
}
