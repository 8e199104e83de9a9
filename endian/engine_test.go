package endian

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEngines(t *testing.T) {
	require.Equal(t, binary.LittleEndian, GetLittleEndianEngine())
	require.Equal(t, binary.BigEndian, GetBigEndianEngine())
}

func TestCompareNativeEndian(t *testing.T) {
	if IsNativeLittleEndian() {
		require.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		require.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		require.True(t, CompareNativeEndian(GetBigEndianEngine()))
		require.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestFloat32_RoundTrip(t *testing.T) {
	values := []float32{0, 1.1, -2.5, math.MaxFloat32, math.SmallestNonzeroFloat32, float32(math.Inf(-1))}

	for _, engine := range []EndianEngine{GetLittleEndianEngine(), GetBigEndianEngine()} {
		for _, v := range values {
			b := make([]byte, 4)
			PutFloat32(engine, b, v)
			require.Equal(t, v, Float32(engine, b))

			appended := AppendFloat32(engine, nil, v)
			require.Equal(t, b, appended)
		}
	}
}

func TestFloat32_LittleEndianLayout(t *testing.T) {
	b := AppendFloat32(GetLittleEndianEngine(), nil, 1.0)
	// 1.0f is 0x3F800000
	require.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, b)
}

func TestFloat32_NaN(t *testing.T) {
	engine := GetLittleEndianEngine()
	b := AppendFloat32(engine, nil, float32(math.NaN()))
	require.True(t, math.IsNaN(float64(Float32(engine, b))))
}
