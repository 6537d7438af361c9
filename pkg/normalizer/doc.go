// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

// Package normalizer maps raw engine records into canonical entities.
//
// A Record is one decoded JSON object from the engine CLI. Source field
// types are not trusted: numbers may arrive as strings, labels as a
// mapping, a sequence or a single string, commands as a string or an
// argv sequence. Each field is first classified by Shape and then
// flattened by one rule, so every normalizer is total. A field that cannot
// be coerced takes its documented default instead of failing the record.
//
// Images are normalized from a single self-contained record: the optional
// `docker image inspect` detail is merged in beforehand with Enrich, so
// Image does not care whether enrichment happened.
package normalizer
