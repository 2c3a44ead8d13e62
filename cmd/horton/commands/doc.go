// Package commands defines the horton CLI.
//
// Commands
//
//   - grid pprint   Print a grid built from flags
//   - life          Run Conway's Game of Life and print the final world
//   - maze          Generate, print and optionally solve a maze
//   - view          Run Game of Life in an interactive window
//
// The root command installs the process logger from --log-level and
// --log-format before any subcommand runs.
package commands
