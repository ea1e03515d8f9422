package aead_test

import (
	"encoding/hex"

	"cryptoshim/internal/aead"
)

type vector struct {
	name       string
	alg        *aead.Algorithm
	key        string
	nonce      string
	aad        string
	plaintext  string
	ciphertext string
	tag        string
}

func unhex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

// rfc8439Plaintext is the RFC 8439 section 2.8.2 message.
const rfc8439Plaintext = "Ladies and Gentlemen of the class of '99: " +
	"If I could offer you only one tip for the future, sunscreen would be it."

const rfc8439Ciphertext = "d31a8d34648e60db7b86afbc53ef7ec2a4aded51296e08fea9e2b5a736ee62d6" +
	"3dbea45e8ca9671282fafb69da92728b1a71de0a9e060b2905d6a5b67ecd3b36" +
	"92ddbd7f2d778b8c9803aee328091b58fab324e4fad675945585808b4831d7bc" +
	"3ff4def08e4b7a9de576d26586cec64b6116"

var vectors = []vector{
	{
		name:       "rfc8439-2.8.2",
		alg:        aead.ChaCha20Poly1305,
		key:        "808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9f",
		nonce:      "070000004041424344454647",
		aad:        "50515253c0c1c2c3c4c5c6c7",
		plaintext:  hex.EncodeToString([]byte(rfc8439Plaintext)),
		ciphertext: rfc8439Ciphertext,
		tag:        "1ae10b594f09e26a7e902ecbd0600691",
	},
	// McGrew and Viega GCM test cases 1, 2, 13 and 14.
	{
		name:  "gcm-tc1",
		alg:   aead.AES128GCM,
		key:   "00000000000000000000000000000000",
		nonce: "000000000000000000000000",
		tag:   "58e2fccefa7e3061367f1d57a4e7455a",
	},
	{
		name:       "gcm-tc2",
		alg:        aead.AES128GCM,
		key:        "00000000000000000000000000000000",
		nonce:      "000000000000000000000000",
		plaintext:  "00000000000000000000000000000000",
		ciphertext: "0388dace60b6a392f328c2b971b2fe78",
		tag:        "ab6e47d42cec13bdf53a67b21257bddf",
	},
	{
		name:  "gcm-tc13",
		alg:   aead.AES256GCM,
		key:   "0000000000000000000000000000000000000000000000000000000000000000",
		nonce: "000000000000000000000000",
		tag:   "530f8afbc74536b9a963b4f1c4cb738b",
	},
	{
		name:       "gcm-tc14",
		alg:        aead.AES256GCM,
		key:        "0000000000000000000000000000000000000000000000000000000000000000",
		nonce:      "000000000000000000000000",
		plaintext:  "00000000000000000000000000000000",
		ciphertext: "cea7403d4d606b6e074ec5d3baf39d18",
		tag:        "d0d1c8a799996bf0265b98b5d48ab919",
	},
}
