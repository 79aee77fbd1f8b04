package validators

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimeOfDay(t *testing.T) {
	for _, ok := range []string{"00:00", "9:30", "14:05", "23:59"} {
		assert.True(t, IsTimeOfDay(ok), ok)
	}
	for _, bad := range []string{"24:00", "12:60", "1230", "noon", ""} {
		assert.False(t, IsTimeOfDay(bad), bad)
	}
}

func TestIsMobilePhone(t *testing.T) {
	assert.True(t, IsMobilePhone("+1 (555) 123-4567"))
	assert.True(t, IsMobilePhone("9876543210"))
	assert.False(t, IsMobilePhone("12"))
	assert.False(t, IsMobilePhone("call me"))
}

func TestIsDate(t *testing.T) {
	assert.True(t, IsDate("2030-05-01"))
	assert.True(t, IsDate("2030-05-01T10:00:00Z"))
	assert.False(t, IsDate("01/05/2030"))
}

type sampleRequest struct {
	Title     string   `json:"title" binding:"required,min=5"`
	RoomType  string   `json:"roomType" binding:"required,roomtype"`
	Amenities []string `json:"amenities" binding:"dive,amenity"`
	Time      string   `json:"viewingTime" binding:"required,hhmm"`
}

func TestFromValidatorUsesJSONNames(t *testing.T) {
	Register()

	err := binding.Validator.ValidateStruct(sampleRequest{
		Title:     "abc",
		RoomType:  "Castle",
		Amenities: []string{"wifi", "moat"},
		Time:      "25:00",
	})
	require.Error(t, err)

	fields, ok := FromValidator(err)
	require.True(t, ok)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}

	assert.Equal(t, "title must be at least 5 characters", byField["title"])
	assert.Equal(t, "Invalid room type", byField["roomType"])
	assert.Equal(t, "Invalid amenity", byField["amenities[1]"])
	assert.Equal(t, "Please provide a valid time in HH:MM format", byField["viewingTime"])
}

func TestFromValidatorIgnoresOtherErrors(t *testing.T) {
	_, ok := FromValidator(errors.New("boom"))
	assert.False(t, ok)
}

func TestErrors(t *testing.T) {
	var errs Errors
	require.NoError(t, errs.Err())

	errs.Add("budget.max", "Maximum budget must be greater than minimum budget")
	require.Error(t, errs.Err())
	assert.Contains(t, errs.Error(), "budget.max")
}

type fakeResolver struct {
	mx  []*net.MX
	ips []net.IPAddr
}

func (f fakeResolver) LookupMX(context.Context, string) ([]*net.MX, error) {
	if f.mx == nil {
		return nil, errors.New("no mx")
	}
	return f.mx, nil
}

func (f fakeResolver) LookupIPAddr(context.Context, string) ([]net.IPAddr, error) {
	if f.ips == nil {
		return nil, errors.New("no host")
	}
	return f.ips, nil
}

func TestEmailDomainResolves(t *testing.T) {
	ctx := context.Background()

	assert.True(t, EmailDomainResolves(ctx, fakeResolver{mx: []*net.MX{{Host: "mx.example.com."}}}, "a@example.com"))
	assert.True(t, EmailDomainResolves(ctx, fakeResolver{ips: []net.IPAddr{{IP: net.IPv4(127, 0, 0, 1)}}}, "a@example.com"))
	assert.False(t, EmailDomainResolves(ctx, fakeResolver{}, "a@example.com"))
	assert.False(t, EmailDomainResolves(ctx, fakeResolver{}, "a@"))
}
