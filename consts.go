package radix

import (
	"math/big"
)

const (
	// Each pass sorts on one byte of the value, so there is one bucket for
	// every possible byte value.
	radixBits    = 8
	radixBuckets = 1 << radixBits

	// Buckets at or above this index hold values with the top bit set when
	// counting the most significant byte.
	signBucket = radixBuckets / 2

	maxUint64 = 1<<64 - 1

	signBit = 0x8000000000000000

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxI128 = I128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}
	MinI128 = I128{hi: 0x8000000000000000, lo: 0}
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroI128 I128
	zeroU128 U128

	big1 = new(big.Int).SetInt64(1)

	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)
)
