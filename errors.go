/*
 * errors.go, part of gasteiger.
 *
 *
 * Copyright 2012 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package gasteiger

import "fmt"

// Error is the interface for errors returned by this library. The Decorate
// method adds the name of a function in the call stack without changing
// the error type. The charge calculation itself never returns errors, only
// the file and topology handling does.
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the error type used in this package.
type CError struct {
	msg      string
	deco     []string
	filename string //empty if the error is not associated to a file
	line     int    //0 if unknown
	err      error  //wrapped error, if any
}

func (err *CError) Error() string {
	msg := err.msg
	if err.filename != "" {
		msg = fmt.Sprintf("%s: %s", err.filename, msg)
	}
	if err.line > 0 {
		msg = fmt.Sprintf("%s (line %d)", msg, err.line)
	}
	if err.err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.err.Error())
	}
	return msg
}

// Decorate adds dec to the decoration slice of strings of the error,
// and returns the resulting slice. An empty dec just returns
// the current decoration.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// FileName returns the file associated to the error, if any.
func (err *CError) FileName() string { return err.filename }

// Line returns the line of the file where the error was found, or 0.
func (err *CError) Line() int { return err.line }

func (err *CError) Unwrap() error { return err.err }

func newError(msg, caller string) *CError {
	return &CError{msg: msg, deco: []string{caller}}
}

// errDecorate adds the caller's name to err if err implements Error.
// Other errors are wrapped in a CError.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	if err2, ok := err.(Error); ok {
		err2.Decorate(caller)
		return err2
	}
	return &CError{msg: caller, deco: []string{caller}, err: err}
}
