// Package cli provides command-line interface functionality: the cobra root
// command, flag definitions and viper-based configuration for lernhelfer.
package cli
