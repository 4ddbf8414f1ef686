// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// tinfer provides Hindley-Milner style type inference for a small, dynamically-typed scripting
// language with optional type annotations.
//
// Inference runs in two passes: the syntax tree is visited once to emit equality constraints,
// then the constraints are unified in emission order. Unification failures are collected and
// reported together; errors found while visiting the tree abort the check.
//
//
// Supported Features:
//
//   * Primitive, array, map, and promise types
//   * Structs (nominal records) and enums with unit, tuple, struct, and constant variants
//   * Generic functions, structs, and enums with type-class bounds (`<T: Num>`)
//   * Nominal type-classes (Num, Stringable, Ord, Eq, Show, Struct) checked at binding time
//   * Recursive functions, lambdas, and async functions with `await`
//   * Host-declared builtins loaded from YAML, instantiated freshly at each use
//
//
// Links:
//
// Hindley-Milner type system: https://en.wikipedia.org/wiki/Hindley–Milner_type_system
//
// Generalizing Hindley-Milner Type Inference Algorithms (Heeren, Hage, Swierstra, 2002): https://www.cs.uu.nl/research/techreps/repo/CS-2002/2002-031.pdf
package tinfer
