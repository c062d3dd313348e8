// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package disruptor

// EventTranslator writes a caller-supplied payload into the preallocated
// slot at sequence. Invoked exactly once per claimed sequence, between
// claim and publish.
type EventTranslator[E any] func(event *E, sequence int64)

// EventTranslatorOneArg passes one extra argument through to the
// translator, avoiding a closure allocation per publish.
type EventTranslatorOneArg[E any, A any] func(event *E, sequence int64, arg0 A)

// EventTranslatorTwoArg passes two extra arguments through to the
// translator.
type EventTranslatorTwoArg[E any, A any, B any] func(event *E, sequence int64, arg0 A, arg1 B)

// EventTranslatorThreeArg passes three extra arguments through to the
// translator.
type EventTranslatorThreeArg[E any, A any, B any, C any] func(event *E, sequence int64, arg0 A, arg1 B, arg2 C)

// EventTranslatorVararg passes a variable number of arguments through to
// the translator.
type EventTranslatorVararg[E any] func(event *E, sequence int64, args ...any)
