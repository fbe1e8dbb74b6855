// This file is part of Zed180.
//
// Zed180 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zed180 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zed180.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectedFailure and ExpectedSuccess functions test for failure and
// success under generic conditions. The documentation for those functions
// describes the currently supported types. Note that the nil type is
// considered a success: it will cause ExpectedFailure to fail and
// ExpectedSuccess to succeed.
//
// The Equate function tests for equality between two values, with the
// convenience of allowing untyped integer literals as the expected value for
// the unsigned integer types that appear throughout the project.
//
// CompareWriter is an io.Writer implementation that captures output so that
// tests can compare it with expected strings.
package test
