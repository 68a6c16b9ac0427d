package postgres

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/nkostic/transferhub/internal/infrastructure/postgres/generated"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "264000", "244999.65", "1260000", "0.0001"} {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)

		got := numericToDecimal(decimalToNumeric(d))
		require.True(t, d.Equal(got), "round trip of %s gave %s", s, got)
	}
}

func TestNumericToDecimalInvalid(t *testing.T) {
	got := numericToDecimal(pgtype.Numeric{})
	require.True(t, got.Equal(decimal.Zero))
}

func TestRowToTransfer(t *testing.T) {
	createdAt := time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	row := generated.Transfer{
		ID:          "tr-1",
		PlayerID:    10,
		OldTeamID:   20,
		NewTeamID:   30,
		ContractFee: decimalToNumeric(decimal.NewFromInt(264000)),
		CreatedAt:   timeToPgTimestamptz(createdAt),
	}

	transfer := rowToTransfer(row)
	require.Equal(t, "tr-1", transfer.ID)
	require.Equal(t, int64(10), transfer.PlayerID)
	require.Equal(t, int64(20), transfer.OldTeamID)
	require.Equal(t, int64(30), transfer.NewTeamID)
	require.True(t, transfer.ContractFee.Equal(decimal.NewFromInt(264000)))
	require.True(t, transfer.CreatedAt.Equal(createdAt))
}

func TestULIDGeneratorOrdering(t *testing.T) {
	gen := NewULIDGenerator()

	a := gen.Generate()
	time.Sleep(2 * time.Millisecond)
	b := gen.Generate()

	require.Len(t, a, 26)
	require.NotEqual(t, a, b)
	require.Less(t, a, b, "ids generated later must sort later")
}
