package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var ErrTopupBalanceCommandIsNotConstructed = errors.New(
	"TopupBalanceCommand must be created via NewTopupBalanceCommand constructor",
)

// TopupBalanceCommand deposits money into a user's prepaid balance. The
// deposit is simulated: picking a bank is the whole payment flow.
type TopupBalanceCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	bankID kernel.UUID
	amount float64

	guard guard.ConstructorGuard
}

// NewTopupBalanceCommand validates and builds the deposit request.
func NewTopupBalanceCommand(userID, bankID kernel.UUID, amount float64) (TopupBalanceCommand, error) {
	cmd := TopupBalanceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setBankID(bankID),
		cmd.setAmount(amount),
	); err != nil {
		return TopupBalanceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c TopupBalanceCommand) Validate() error {
	return c.guard.Validate(ErrTopupBalanceCommandIsNotConstructed)
}

func (c TopupBalanceCommand) UserID() kernel.UUID { return c.userID }
func (c TopupBalanceCommand) BankID() kernel.UUID { return c.bankID }
func (c TopupBalanceCommand) Amount() float64     { return c.amount }

func (c *TopupBalanceCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("userID", err)
	}
	c.userID = userID
	return nil
}

func (c *TopupBalanceCommand) setBankID(bankID kernel.UUID) error {
	if err := bankID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("bankID", err)
	}
	c.bankID = bankID
	return nil
}

func (c *TopupBalanceCommand) setAmount(amount float64) error {
	if amount <= 0 {
		return errs.NewValueIsOutOfRangeError("amount", amount, 0, nil)
	}
	c.amount = amount
	return nil
}
