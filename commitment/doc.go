// Package commitment holds the 32-byte piece commitment and its
// conversions to and from piece CIDs.
package commitment

//go:generate sh -c "cd ../gen && go run ."
