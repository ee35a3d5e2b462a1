// Package spec embeds the JSON Schemas of the external car-rental API
// payloads. The repo layer compiles them once at startup and checks every
// response body against them before decoding.
package spec

import _ "embed"

// CarSchema describes one car as returned by GET /car/availability (per item)
// and GET /car/{carId}.
//
//go:embed car.schema.json
var CarSchema []byte

// BookingResultSchema describes the body of a successful POST /customer/booking.
//
//go:embed booking_result.schema.json
var BookingResultSchema []byte
