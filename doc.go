/*
Package textstat computes text-quality signals for filtering natural-language corpora.

Description

Corpus pipelines which train or evaluate language models need to tell
prose from boilerplate, markup residue, tables of numbers or mojibake.
Package textstat and its sub-packages provide the quantitative signals
such filters are built upon. Keep/discard decisions are left to clients.

Signals are computed per text, by pure functions without any shared mutable
state. Clients may call them concurrently for independent texts.

BSD License

Copyright (c) 2017–20, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

Sub-packages implement the individual analyzers:

   category   Unicode general category and category group of code-points
   charclass  six mutually exclusive character classes
   metrics    single-pass character counts, ratios and entropies
   tokenize   word and punctuation tokens
   unigram    token frequencies, lexical diversity and entropy
   trigram    category transition statistics

All classification schemes are derived from the single category table of
package category.

Package textstat itself bundles the analyzers: Analyze runs each of them once
on a text and returns a Report. Analyzers are configured with a Config,
which may be read from YAML:

   unigram:
     include_punctuation: false
     case_sensitive: true
   trigram:
     granularity: category
   normalization: nfc

Normalization, if any, is applied to the text before every analyzer sees it.
*/
package textstat

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
