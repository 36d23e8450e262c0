package constants

// NATS subjects published by the passenger service
const (
	SubjectPassengerRegistered = "passenger.registered"
	SubjectRideQuoted          = "ride.quoted"
)
