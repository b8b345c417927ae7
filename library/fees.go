package library

const (
	// GracePeriodDays is how long a loan may run before fees accrue.
	GracePeriodDays = 14
	// DailyLateFee is charged per day past the grace period.
	DailyLateFee = 0.5
	// DefaultLoanDays is the loan length charged at checkout. Borrow dates are
	// not tracked, so every checkout is billed as a 21-day loan.
	DefaultLoanDays = 21
)

// FeePolicy maps a loan duration in days to a late fee.
type FeePolicy func(daysElapsed int) float64

// CalculateFee is the standard FeePolicy. Any duration within the grace
// period, including a negative one, costs nothing.
func CalculateFee(daysElapsed int) float64 {
	if daysElapsed <= GracePeriodDays {
		return 0
	}
	return float64(daysElapsed-GracePeriodDays) * DailyLateFee
}
