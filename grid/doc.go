// This file is part of befunge - https://github.com/db47h/befunge
//
// Copyright 2026 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package grid implements the Befunge program store: a sparse, unbounded
// two-dimensional canvas of characters that holds both the program code and
// any data the running program writes to itself.
//
// Coordinates follow the text layout: X is the column and Y is the line
// number, so Y grows downward. Line r, column c of a source file is stored at
// Position{X: c, Y: r}.
package grid
