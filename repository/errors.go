/*
 * Copyright 2025 cubos.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package repository

import "errors"

// ErrNoResult is returned by Update and Delete when no row matches the
// record id. It is never used to wrap storage-layer failures, so callers can
// rely on errors.Is(err, ErrNoResult) to tell a missing row apart from a
// connectivity or constraint error.
var ErrNoResult = errors.New("repository: no result")
