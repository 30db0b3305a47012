// Package types declares the fixed-length buffers exchanged with native
// signing and key-agreement routines. The buffers are generated by
// fixedgen; see gen/gen.go.
//
// Nothing in this package validates key or signature material. A
// PublicKey holds 33 bytes whether or not they encode a point on the curve.
package types

//go:generate sh -c "cd ../gen && go run ."
