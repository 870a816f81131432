package models

// TrainClassCode is the service tier offered on a train. Each class on a
// train carries its own fare and seat inventory.
type TrainClassCode string

const (
	ClassSleeper       TrainClassCode = "SL"
	ClassAC3Tier       TrainClassCode = "3A"
	ClassAC2Tier       TrainClassCode = "2A"
	ClassAC1st         TrainClassCode = "1A"
	ClassChairCar      TrainClassCode = "CC"
	ClassExecChairCar  TrainClassCode = "EC"
	ClassGeneral       TrainClassCode = "GN"
	ClassAC3Economy    TrainClassCode = "3E"
	ClassFirstClass    TrainClassCode = "FC"
	ClassAnubhuti      TrainClassCode = "EA"
	ClassUnreserved    TrainClassCode = "UR"
	ClassSecondSitting TrainClassCode = "2S"
)

// QuotaCode is the booking channel. Stored with the booking; no quota carries
// distinct business rules beyond eligibility on the booking form.
type QuotaCode string

const (
	QuotaGeneral        QuotaCode = "GN"
	QuotaTatkal         QuotaCode = "TQ"
	QuotaLadies         QuotaCode = "LD"
	QuotaDefence        QuotaCode = "DF"
	QuotaHandicapped    QuotaCode = "PH"
	QuotaForeignTourist QuotaCode = "FT"
	QuotaSeniorCitizen  QuotaCode = "SS"
)

// Train operational status, updated by an operations feed outside this system.
const (
	TrainOnTime      = "ON_TIME"
	TrainDelayed     = "DELAYED"
	TrainCancelled   = "CANCELLED"
	TrainRescheduled = "RESCHEDULED"
)

// Booking lifecycle. CONFIRMED transitions to CANCELLED exactly once;
// there are no other transitions.
const (
	BookingConfirmed = "CONFIRMED"
	BookingCancelled = "CANCELLED"
)
