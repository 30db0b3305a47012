package main

import (
	"github.com/filecoin-project/go-fixedbytes/fixedgen"
)

func main() {
	if err := fixedgen.WriteFile("../types/fixed_gen.go", "types",
		fixedgen.Spec{Name: "SecretKey", Elem: byte(0), Len: 32,
			Doc: "SecretKey is a 32-byte secret scalar."},
		fixedgen.Spec{Name: "PublicKey", Elem: byte(0), Len: 33,
			Doc: "PublicKey is a compressed public key: a parity tag followed by the x coordinate."},
		fixedgen.Spec{Name: "UncompressedPublicKey", Elem: byte(0), Len: 65,
			Doc: "UncompressedPublicKey is a 0x04 tag followed by the x and y coordinates."},
		fixedgen.Spec{Name: "Signature", Elem: byte(0), Len: 64,
			Doc: "Signature is a compact (r, s) signature."},
		fixedgen.Spec{Name: "RecoverableSignature", Elem: byte(0), Len: 65,
			Doc: "RecoverableSignature is a compact signature followed by a recovery id."},
		fixedgen.Spec{Name: "Nonce", Elem: byte(0), Len: 32,
			Doc: "Nonce is 32 bytes of per-signature randomness."},
		fixedgen.Spec{Name: "Message", Elem: byte(0), Len: 32,
			Doc: "Message is the 32-byte digest that gets signed."},
		fixedgen.Spec{Name: "SharedSecret", Elem: byte(0), Len: 32,
			Doc: "SharedSecret is the output of a Diffie-Hellman exchange."},
		fixedgen.Spec{Name: "FieldElement", Elem: uint32(0), Len: 10,
			Doc: "FieldElement holds a field element as ten 26-bit limbs, least significant first."},
		fixedgen.Spec{Name: "Scalar", Elem: uint64(0), Len: 4,
			Doc: "Scalar holds a group scalar as four 64-bit limbs, least significant first."},
	); err != nil {
		panic(err)
	}
	if err := fixedgen.WriteFile("../commitment/fixed_gen.go", "commitment",
		fixedgen.Spec{Name: "Piece", Elem: byte(0), Len: 32,
			Doc: "Piece is a piece commitment (CommP): the root of the padded piece's merkle tree."},
	); err != nil {
		panic(err)
	}
}
