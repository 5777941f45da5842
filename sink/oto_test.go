// SPDX-License-Identifier: EPL-2.0

package sink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteQueue_ReadZeroFillsOnUnderrun(t *testing.T) {
	t.Parallel()

	q := &byteQueue{}
	q.push([]int16{0x0102})

	p := make([]byte, 6)
	n, err := q.Read(p)
	require.NoError(t, err)
	require.Equal(t, 6, n, "Read must always fill the device buffer")

	// Little-endian sample, then silence.
	assert.Equal(t, []byte{0x02, 0x01, 0, 0, 0, 0}, p)
}

func TestByteQueue_LimitDropsOldest(t *testing.T) {
	t.Parallel()

	q := &byteQueue{limit: 8}

	q.push([]int16{1, 2, 3})
	require.Len(t, q.data, 6)

	// Exceeding the limit keeps the newest bytes.
	q.push([]int16{4, 5, 6})
	require.Len(t, q.data, 8)

	p := make([]byte, 8)
	_, err := q.Read(p)
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 0, 4, 0, 5, 0, 6, 0}, p)
}

func TestByteQueue_Drop(t *testing.T) {
	t.Parallel()

	q := &byteQueue{limit: 64}
	q.push([]int16{1, 2, 3, 4})
	q.drop()

	p := make([]byte, 4)
	n, err := q.Read(p)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, []byte{0, 0, 0, 0}, p)
}
