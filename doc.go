// Package calcr implements an interactive floating-point calculator.
//
// An equation is a single line of text: numbers, the operators + - * / ^ !,
// parentheses, the constants pi, e, and phi, one-argument functions like
// sin and sqrt, and variables created by writing "name = equation". Names
// are case-insensitive, and the aliases π, ϕ, and √ work like pi, phi, and
// sqrt. The previous result is available as "ans".
//
// Each session owns an Env holding its constants, functions, and variables.
// Evaluating a line never exits the process; malformed input is reported as
// a positioned error and the environment is left untouched.
package calcr
