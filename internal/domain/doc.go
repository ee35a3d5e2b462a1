// Package domain contains the core data types of the car-rental booking web:
// calendar dates and rental windows, cars, booking forms and requests, notices,
// and the sentinel errors every other internal package classifies against.
// Apart from the date type it borrows from the OpenAPI runtime it has no
// external dependencies.
package domain
