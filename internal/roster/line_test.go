package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

func TestParseLine(t *testing.T) {
	v := DefaultVocabulary()

	tests := []struct {
		name string
		line string
		want model.Passenger
	}{
		{
			name: "status location seat",
			line: "1. 김진욱(입완, 양재, 1)",
			want: model.Passenger{OrderNumber: 1, Name: "김진욱", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(1)},
		},
		{
			name: "location status seat",
			line: "2. 나정선(사당, 예정, 3)",
			want: model.Passenger{OrderNumber: 2, Name: "나정선", PaymentStatus: model.StatusPending, Location: model.LocationSadang, SeatNumber: model.SeatPtr(3)},
		},
		{
			name: "seat first",
			line: "3. 박민수(5, 죽전, 입완)",
			want: model.Passenger{OrderNumber: 3, Name: "박민수", PaymentStatus: model.StatusPaid, Location: model.LocationJukjeon, SeatNumber: model.SeatPtr(5)},
		},
		{
			name: "unassigned keyword",
			line: "4. 이영희(신갈, 미정, 예정)",
			want: model.Passenger{OrderNumber: 4, Name: "이영희", PaymentStatus: model.StatusPending, Location: model.LocationSingal},
		},
		{
			name: "free choice keyword",
			line: "5. 최철수(복정, 입완, 맘대로)",
			want: model.Passenger{OrderNumber: 5, Name: "최철수", PaymentStatus: model.StatusPaid, Location: model.LocationBokjeong},
		},
		{
			name: "seat omitted",
			line: "6. 정민수(양재, 입완)",
			want: model.Passenger{OrderNumber: 6, Name: "정민수", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae},
		},
		{
			name: "decorated seat",
			line: "7. 강수진(죽전. 입완. 12!!!)",
			want: model.Passenger{OrderNumber: 7, Name: "강수진", PaymentStatus: model.StatusPaid, Location: model.LocationJukjeon, SeatNumber: model.SeatPtr(12)},
		},
		{
			name: "seat with suffix",
			line: "8. 홍길동(사당 입완 7번)",
			want: model.Passenger{OrderNumber: 8, Name: "홍길동", PaymentStatus: model.StatusPaid, Location: model.LocationSadang, SeatNumber: model.SeatPtr(7)},
		},
		{
			name: "out of range seat ignored",
			line: "9. 오세훈(사당, 입완, 30)",
			want: model.Passenger{OrderNumber: 9, Name: "오세훈", PaymentStatus: model.StatusPaid, Location: model.LocationSadang},
		},
		{
			name: "first seat wins",
			line: "10. 유재석(3, 4, 양재)",
			want: model.Passenger{OrderNumber: 10, Name: "유재석", PaymentStatus: model.StatusPending, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(3)},
		},
		{
			name: "first location wins",
			line: "11. 강호동(양재, 사당)",
			want: model.Passenger{OrderNumber: 11, Name: "강호동", PaymentStatus: model.StatusPending, Location: model.LocationYangjae},
		},
		{
			name: "first status wins",
			line: "12. 신동엽(예정, 입완)",
			want: model.Passenger{OrderNumber: 12, Name: "신동엽", PaymentStatus: model.StatusPending, Location: model.LocationUnspecified},
		},
		{
			name: "ascii decorations",
			line: "13. 김종국(^^, 사당)",
			want: model.Passenger{OrderNumber: 13, Name: "김종국", PaymentStatus: model.StatusPending, Location: model.LocationSadang},
		},
		{
			name: "unknown annotations ignored",
			line: "14. 하하(양재, 입완, 2, 막걸리)",
			want: model.Passenger{OrderNumber: 14, Name: "하하", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(2)},
		},
		{
			name: "name is trimmed",
			line: "15.   송지효   (입완)",
			want: model.Passenger{OrderNumber: 15, Name: "송지효", PaymentStatus: model.StatusPaid, Location: model.LocationUnspecified},
		},
		{
			name: "name only",
			line: "16. 전소민",
			want: model.Passenger{OrderNumber: 16, Name: "전소민", PaymentStatus: model.StatusPending, Location: model.LocationUnspecified},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ParseLine(tt.line)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLineRejects(t *testing.T) {
	v := DefaultVocabulary()

	for _, line := range []string{
		"17.",
		"18.   ",
		"19. 김 철수",
		"20. 김철수()",
		"21. (입완, 양재)",
	} {
		t.Run(line, func(t *testing.T) {
			_, ok := v.ParseLine(line)
			assert.False(t, ok)
		})
	}
}

func TestParseLineTokenOrderIndependent(t *testing.T) {
	v := DefaultVocabulary()

	a, ok := v.ParseLine("1. 김진욱(입완, 양재, 5)")
	require.True(t, ok)
	b, ok := v.ParseLine("1. 김진욱(5, 양재, 입완)")
	require.True(t, ok)
	c, ok := v.ParseLine("1. 김진욱(양재 5 입완)")
	require.True(t, ok)

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
}
