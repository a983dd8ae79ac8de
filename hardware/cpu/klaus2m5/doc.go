// Package klaus2m5 smoke-tests opcode coverage: every legal opcode byte in
// the descriptor table is exercised at least once and must execute without
// halting the CPU. It is named after Klaus Dormann's well known 6502
// functional test suite (https://github.com/Klaus2m5/6502_65C02_functional_tests)
// but, unlike that suite, needs no external test ROM — it drives each
// opcode directly rather than running a canned assembled program.
package klaus2m5
