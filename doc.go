/*
Package u8scan splits byte strings into UTF-8 characters and scans them.

Decoding never fails. A byte that does not start a well-formed sequence
becomes a one-byte [Char] with Valid set to false, so every step makes
progress and malformed input can be inspected, replaced or dropped like any
other character.

# Overview

  - [Decode] / [CharAt] - decode one character at a byte offset
  - [NewRange] - lazy forward view, usable with [Count], [Find], [Filter]
    and range-over-func through [Range.All]
  - [Length], [At], [Front], [Back], [Empty] - character indexed access
  - [ScanUTF8], [ScanASCII], [Scan] - build a new string by deciding per
    character whether to keep, replace, drop it or stop
  - [NewDecoder], [NewTransformer] - the same scan over a stream

A leading byte order mark (EF BB BF) is not a character. Ranges skip it,
the access functions never count it, and scans drop it unless told to copy
it or hand it to a [BOMHandler].

# Modes

In the default [ModeUTF8] the lead byte decides the sequence length and,
with validation on, every continuation byte must match 10xxxxxx. Overlong
forms, surrogates and values above U+10FFFF are not rejected. [ModeASCII]
treats every byte as a character of its own.
*/
package u8scan
