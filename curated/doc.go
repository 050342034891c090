// This file is part of Padmux.
//
// Padmux is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padmux is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padmux.  If not, see <https://www.gnu.org/licenses/>.

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns are usually declared as constants by the package
// that returns the error. For example, from the prefs package:
//
//	err := reg.Set("key_q", "100")
//	if curated.Is(err, prefs.UnknownOption) {
//		fmt.Println("no such option")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf("recorder: %v", curated.Errorf(recorder.BadSignature))
//	curated.Has(e, recorder.BadSignature) // true
//	curated.Is(e, recorder.BadSignature)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. Put another way, it returns true if the error is
// 'expected' and false if the error is 'unexpected'.
//
// Any error value given as a placeholder value is also available through
// Unwrap(), so the errors.Is() and errors.As() functions from the standard
// library work with curated errors. For example, an os.PathError placed in a
// curated error can still be tested with errors.Is(err, fs.ErrNotExist).
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means a function can wrap an error with the
// package prefix without worrying whether the error already has that prefix:
//
//	playback: playback: file not found
//
// is printed as
//
//	playback: file not found
package curated
