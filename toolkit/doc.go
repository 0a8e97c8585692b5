// Package toolkit implements the deterministic text-processing tools the
// mentat agents call: a naive SQL syntax check and improvement advisor, a
// SQL-to-Knex.js CoffeeScript transliterator, and CoffeeScript style and
// logic checks.
//
// Every tool is a pure function from text to text. None of them parse their
// input with a real grammar; they are intentionally shallow heuristics whose
// output is interpreted by the model, and their failure modes are reported
// as text rather than errors.
package toolkit
