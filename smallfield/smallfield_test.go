package smallfield

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/consensys/go-galois/pkg/field"
	"github.com/consensys/go-galois/pkg/util/assert"
)

func TestField_Add(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for iter := 0; iter < 100000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus)))
		b := uint32(rand.Int31n(int32(f.modulus)))

		i.SetUint64(uint64(a)).
			Add(&i, j.SetUint64(uint64(b))).
			Lsh(&i, 32).
			Mod(&i, &m)

		x := f.NewElement(a)
		y := f.NewElement(b)

		x = f.Add(x, y)

		assert.Equal(t, i.Uint64(), x[0])
	}
}

func TestField_Sub(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for iter := 0; iter < 100000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus)))
		b := uint32(rand.Int31n(int32(f.modulus)))

		i.SetUint64(uint64(a)).
			Sub(&i, j.SetUint64(uint64(b))).
			Lsh(&i, 32).
			Mod(&i, &m)

		x := f.NewElement(a)
		y := f.NewElement(b)

		x = f.Sub(x, y)

		assert.Equal(t, i.Uint64(), x[0])
	}
}

func TestField_Mul(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, j, m big.Int

	m.SetUint64(uint64(f.modulus))

	for iter := 0; iter < 10000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus)))
		b := uint32(rand.Int31n(int32(f.modulus)))

		i.SetUint64(uint64(a)).
			Mul(&i, j.SetUint64(uint64(b))).
			Lsh(&i, 32).
			Mod(&i, &m)

		x := f.NewElement(a)
		y := f.NewElement(b)

		x = f.Mul(x, y)

		assert.Equal(t, i.Uint64(), x[0])
	}
}

func TestField_Exp(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, n, m big.Int

	m.SetUint64(uint64(f.modulus))

	for iter := 0; iter < 10000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus)))
		k := uint64(rand.Int63n(int64(1 << 20)))

		i.SetUint64(uint64(a)).
			Exp(&i, n.SetUint64(k), &m).
			Lsh(&i, 32). // Montgomery form
			Mod(&i, &m)

		x := f.Exp(f.NewElement(a), k)

		assert.Equal(t, i.Uint64(), x[0], "%d ^ %d", a, k)
	}
}

func TestField_Inverse(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	var i, m big.Int

	m.SetUint64(uint64(f.modulus))

	for iter := 0; iter < 100000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus-1))) + 1

		i.SetUint64(uint64(a)).
			ModInverse(&i, &m).
			Lsh(&i, 32). // Montgomery form
			Mod(&i, &m)

		x := f.NewElement(a)
		x = f.Inverse(x)

		assert.Equal(t, i.Uint64(), x[0], "inverse of %d", a)
	}
}

func TestField_InverseZero(t *testing.T) {
	f := New(1<<31 - 1)

	assert.Equal(t, uint32(0), f.Inverse(Element{})[0])
}

func TestField_Div(t *testing.T) {
	f := New(1<<31 - 1) // Mersenne31

	for iter := 0; iter < 10000; iter++ {
		a := uint32(rand.Int31n(int32(f.modulus)))
		b := uint32(rand.Int31n(int32(f.modulus-1))) + 1

		x := f.NewElement(a)
		y := f.NewElement(b)

		q, err := f.Div(x, y)
		assert.NoError(t, err)
		// (a / b) * b = a
		assert.Equal(t, 0, f.Cmp(f.Mul(q, y), x), "%d / %d", a, b)
	}
	//
	_, err := f.Div(f.NewElement(1), Element{})
	assert.ErrorIs(t, err, field.ErrDivisionByZero)
}

// The Montgomery engine must agree with the generic engine over the same
// field.
func TestField_CrossRepresentation(t *testing.T) {
	const modulus uint32 = 1<<31 - 1 // Mersenne31

	f := New(modulus)

	for iter := 0; iter < 10000; iter++ {
		a := uint32(rand.Int31n(int32(modulus)))
		b := uint32(rand.Int31n(int32(modulus-1))) + 1

		gx, err := field.New(uint64(a), uint64(modulus))
		assert.NoError(t, err)
		gy, err := field.New(uint64(b), uint64(modulus))
		assert.NoError(t, err)

		sum, err := gx.Add(gy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(f.ToUint32(f.Add(f.NewElement(a), f.NewElement(b)))), sum.Value())

		diff, err := gx.Sub(gy)
		assert.NoError(t, err)
		assert.Equal(t, uint64(f.ToUint32(f.Sub(f.NewElement(a), f.NewElement(b)))), diff.Value())
	}
}

func TestField_Cmp(t *testing.T) {
	f := New(1<<31 - 1)

	assert.Equal(t, -1, f.Cmp(f.NewElement(3), f.NewElement(5)))
	assert.Equal(t, 0, f.Cmp(f.NewElement(5), f.NewElement(5)))
	assert.Equal(t, 1, f.Cmp(f.NewElement(7), f.NewElement(5)))
}
