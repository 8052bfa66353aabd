package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/iliyamo/bus-seat-roster/internal/model"
)

const samplePost = `(10/25토) 만추, 설악산 천불동!!
* 소공원 ~ 천당폭포 왕복
 - 14km/6.5h/획득고도 500m
* 8만원 / 사당>양재>죽전
* 카뱅 3333-16-1619747
https://m.blog.naver.com/trip

1. 김진욱(입완, 양재, 1)
2. 나정선(사당, 예정, 3)
3. 박민수(5, 죽전, 입완)
4. 이영희(신갈, 미정, 예정)
5.
6. 정민수
7. 최철수 (복정, 입완, 맘대로)
`

func TestParserParse(t *testing.T) {
	p := NewParser(nil)

	got := p.Parse(samplePost)
	require.Len(t, got, 6)

	names := make([]string, 0, len(got))
	for _, passenger := range got {
		names = append(names, passenger.Name)
	}
	assert.Equal(t, []string{"김진욱", "나정선", "박민수", "이영희", "정민수", "최철수"}, names)

	assert.Equal(t, model.SeatPtr(1), got[0].SeatNumber)
	assert.Equal(t, model.StatusPaid, got[0].PaymentStatus)
	assert.Equal(t, model.LocationYangjae, got[0].Location)
	assert.Nil(t, got[3].SeatNumber)
	assert.Equal(t, 7, got[5].OrderNumber)
	for _, passenger := range got {
		assert.False(t, passenger.IsTemporaryAssignment)
	}
}

func TestParserParseExample(t *testing.T) {
	got := NewParser(nil).Parse("1. 김(입완, 양재, 1)\n2. 이(사당, 예정, 미정)")

	require.Len(t, got, 2)
	assert.Equal(t, model.Passenger{OrderNumber: 1, Name: "김", PaymentStatus: model.StatusPaid, Location: model.LocationYangjae, SeatNumber: model.SeatPtr(1)}, got[0])
	assert.Equal(t, model.Passenger{OrderNumber: 2, Name: "이", PaymentStatus: model.StatusPending, Location: model.LocationSadang}, got[1])
}

func TestParserNoiseOnly(t *testing.T) {
	assert.Empty(t, NewParser(nil).Parse("* departs at 7am"))
	assert.Empty(t, NewParser(nil).Parse(""))
	assert.Empty(t, NewParser(nil).Parse("\n\n   \n"))
}

func TestParserCRLF(t *testing.T) {
	got := NewParser(nil).Parse("1. 김진욱(입완, 양재, 1)\r\n2. 나정선\r\n")
	require.Len(t, got, 2)
	assert.Equal(t, "나정선", got[1].Name)
}

func TestParserDecomposedHangul(t *testing.T) {
	text := norm.NFD.String("1. 김진욱(입완, 양재, 1)")
	require.NotEqual(t, "1. 김진욱(입완, 양재, 1)", text)

	got := NewParser(nil).Parse(text)
	require.Len(t, got, 1)
	assert.Equal(t, "김진욱", got[0].Name)
	assert.Equal(t, model.StatusPaid, got[0].PaymentStatus)
	assert.Equal(t, model.LocationYangjae, got[0].Location)
}

func TestParserCustomVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.Locations = append(vocab.Locations, LocationName{Location: model.LocationSadang, Name: "사당역"})
	vocab.Paid = append(vocab.Paid, "paid")

	got := NewParser(vocab).Parse("1. Kim(paid, 사당역, 5)")
	require.Len(t, got, 1)
	assert.Equal(t, model.StatusPaid, got[0].PaymentStatus)
	assert.Equal(t, model.LocationSadang, got[0].Location)
	assert.Equal(t, model.SeatPtr(5), got[0].SeatNumber)
}

func TestLocationLabel(t *testing.T) {
	v := DefaultVocabulary()
	assert.Equal(t, "양재", v.LocationLabel(model.LocationYangjae))
	assert.Equal(t, "미지정", v.LocationLabel(model.LocationUnspecified))
}
