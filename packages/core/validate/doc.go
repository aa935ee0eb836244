// Package validate checks that required environment variables are present.
//
// Each key is classified independently as a number, a string, or
// missing/invalid. A failure on one key never stops the others. Results are
// handed to a Reporter as they are produced and also returned for
// programmatic use.
package validate
