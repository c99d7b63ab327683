// Code generated by ent, DO NOT EDIT.

package repo

import (
	"time"

	"github.com/medassist/medassist_backend/internal/repo/appointment"
	"github.com/medassist/medassist_backend/internal/repo/assistancequote"
	"github.com/medassist/medassist_backend/internal/repo/notification"
	"github.com/medassist/medassist_backend/internal/repo/quote"
	"github.com/medassist/medassist_backend/internal/repo/role"
	"github.com/medassist/medassist_backend/internal/repo/user"
	"github.com/medassist/medassist_backend/internal/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	appointmentMixin := schema.Appointment{}.Mixin()
	appointmentMixinFields0 := appointmentMixin[0].Fields()
	_ = appointmentMixinFields0
	appointmentFields := schema.Appointment{}.Fields()
	_ = appointmentFields
	// appointmentDescCreatedAt is the schema descriptor for created_at field.
	appointmentDescCreatedAt := appointmentMixinFields0[0].Descriptor()
	// appointment.DefaultCreatedAt holds the default value on creation for the created_at field.
	appointment.DefaultCreatedAt = appointmentDescCreatedAt.Default.(func() time.Time)
	// appointmentDescUpdatedAt is the schema descriptor for updated_at field.
	appointmentDescUpdatedAt := appointmentMixinFields0[1].Descriptor()
	// appointment.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	appointment.DefaultUpdatedAt = appointmentDescUpdatedAt.Default.(func() time.Time)
	// appointment.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	appointment.UpdateDefaultUpdatedAt = appointmentDescUpdatedAt.UpdateDefault.(func() time.Time)
	// appointmentDescFullName is the schema descriptor for full_name field.
	appointmentDescFullName := appointmentFields[5].Descriptor()
	// appointment.FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	appointment.FullNameValidator = appointmentDescFullName.Validators[0].(func(string) error)
	// appointmentDescPhone is the schema descriptor for phone field.
	appointmentDescPhone := appointmentFields[6].Descriptor()
	// appointment.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	appointment.PhoneValidator = appointmentDescPhone.Validators[0].(func(string) error)
	// appointmentDescIntervention is the schema descriptor for intervention field.
	appointmentDescIntervention := appointmentFields[7].Descriptor()
	// appointment.InterventionValidator is a validator for the "intervention" field. It is called by the builders before save.
	appointment.InterventionValidator = appointmentDescIntervention.Validators[0].(func(string) error)
	// appointmentDescClinicQuotePath is the schema descriptor for clinic_quote_path field.
	appointmentDescClinicQuotePath := appointmentFields[9].Descriptor()
	// appointment.ClinicQuotePathValidator is a validator for the "clinic_quote_path" field. It is called by the builders before save.
	appointment.ClinicQuotePathValidator = appointmentDescClinicQuotePath.Validators[0].(func(string) error)
	assistancequoteMixin := schema.AssistanceQuote{}.Mixin()
	assistancequoteMixinFields0 := assistancequoteMixin[0].Fields()
	_ = assistancequoteMixinFields0
	assistancequoteFields := schema.AssistanceQuote{}.Fields()
	_ = assistancequoteFields
	// assistancequoteDescCreatedAt is the schema descriptor for created_at field.
	assistancequoteDescCreatedAt := assistancequoteMixinFields0[0].Descriptor()
	// assistancequote.DefaultCreatedAt holds the default value on creation for the created_at field.
	assistancequote.DefaultCreatedAt = assistancequoteDescCreatedAt.Default.(func() time.Time)
	// assistancequoteDescLabel is the schema descriptor for label field.
	assistancequoteDescLabel := assistancequoteFields[1].Descriptor()
	// assistancequote.LabelValidator is a validator for the "label" field. It is called by the builders before save.
	assistancequote.LabelValidator = assistancequoteDescLabel.Validators[0].(func(string) error)
	// assistancequoteDescAmountCents is the schema descriptor for amount_cents field.
	assistancequoteDescAmountCents := assistancequoteFields[2].Descriptor()
	// assistancequote.AmountCentsValidator is a validator for the "amount_cents" field. It is called by the builders before save.
	assistancequote.AmountCentsValidator = assistancequoteDescAmountCents.Validators[0].(func(int64) error)
	notificationMixin := schema.Notification{}.Mixin()
	notificationMixinFields0 := notificationMixin[0].Fields()
	_ = notificationMixinFields0
	notificationFields := schema.Notification{}.Fields()
	_ = notificationFields
	// notificationDescCreatedAt is the schema descriptor for created_at field.
	notificationDescCreatedAt := notificationMixinFields0[0].Descriptor()
	// notification.DefaultCreatedAt holds the default value on creation for the created_at field.
	notification.DefaultCreatedAt = notificationDescCreatedAt.Default.(func() time.Time)
	// notificationDescType is the schema descriptor for type field.
	notificationDescType := notificationFields[1].Descriptor()
	// notification.TypeValidator is a validator for the "type" field. It is called by the builders before save.
	notification.TypeValidator = notificationDescType.Validators[0].(func(string) error)
	// notificationDescTitle is the schema descriptor for title field.
	notificationDescTitle := notificationFields[2].Descriptor()
	// notification.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	notification.TitleValidator = notificationDescTitle.Validators[0].(func(string) error)
	// notificationDescIsRead is the schema descriptor for is_read field.
	notificationDescIsRead := notificationFields[5].Descriptor()
	// notification.DefaultIsRead holds the default value on creation for the is_read field.
	notification.DefaultIsRead = notificationDescIsRead.Default.(bool)
	quoteMixin := schema.Quote{}.Mixin()
	quoteMixinFields0 := quoteMixin[0].Fields()
	_ = quoteMixinFields0
	quoteFields := schema.Quote{}.Fields()
	_ = quoteFields
	// quoteDescCreatedAt is the schema descriptor for created_at field.
	quoteDescCreatedAt := quoteMixinFields0[0].Descriptor()
	// quote.DefaultCreatedAt holds the default value on creation for the created_at field.
	quote.DefaultCreatedAt = quoteDescCreatedAt.Default.(func() time.Time)
	// quoteDescUpdatedAt is the schema descriptor for updated_at field.
	quoteDescUpdatedAt := quoteMixinFields0[1].Descriptor()
	// quote.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	quote.DefaultUpdatedAt = quoteDescUpdatedAt.Default.(func() time.Time)
	// quote.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	quote.UpdateDefaultUpdatedAt = quoteDescUpdatedAt.UpdateDefault.(func() time.Time)
	// quoteDescTotalCliniqueCents is the schema descriptor for total_clinique_cents field.
	quoteDescTotalCliniqueCents := quoteFields[3].Descriptor()
	// quote.TotalCliniqueCentsValidator is a validator for the "total_clinique_cents" field. It is called by the builders before save.
	quote.TotalCliniqueCentsValidator = quoteDescTotalCliniqueCents.Validators[0].(func(int64) error)
	// quoteDescTotalAssistanceCents is the schema descriptor for total_assistance_cents field.
	quoteDescTotalAssistanceCents := quoteFields[4].Descriptor()
	// quote.TotalAssistanceCentsValidator is a validator for the "total_assistance_cents" field. It is called by the builders before save.
	quote.TotalAssistanceCentsValidator = quoteDescTotalAssistanceCents.Validators[0].(func(int64) error)
	// quoteDescTotalQuoteCents is the schema descriptor for total_quote_cents field.
	quoteDescTotalQuoteCents := quoteFields[5].Descriptor()
	// quote.TotalQuoteCentsValidator is a validator for the "total_quote_cents" field. It is called by the builders before save.
	quote.TotalQuoteCentsValidator = quoteDescTotalQuoteCents.Validators[0].(func(int64) error)
	// quoteDescFilePath is the schema descriptor for file_path field.
	quoteDescFilePath := quoteFields[6].Descriptor()
	// quote.FilePathValidator is a validator for the "file_path" field. It is called by the builders before save.
	quote.FilePathValidator = quoteDescFilePath.Validators[0].(func(string) error)
	// quoteDescFileName is the schema descriptor for file_name field.
	quoteDescFileName := quoteFields[7].Descriptor()
	// quote.FileNameValidator is a validator for the "file_name" field. It is called by the builders before save.
	quote.FileNameValidator = quoteDescFileName.Validators[0].(func(string) error)
	roleMixin := schema.Role{}.Mixin()
	roleMixinFields0 := roleMixin[0].Fields()
	_ = roleMixinFields0
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescCreatedAt is the schema descriptor for created_at field.
	roleDescCreatedAt := roleMixinFields0[0].Descriptor()
	// role.DefaultCreatedAt holds the default value on creation for the created_at field.
	role.DefaultCreatedAt = roleDescCreatedAt.Default.(func() time.Time)
	userMixin := schema.User{}.Mixin()
	userMixinFields0 := userMixin[0].Fields()
	_ = userMixinFields0
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userMixinFields0[0].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userMixinFields0[1].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescFirstName is the schema descriptor for first_name field.
	userDescFirstName := userFields[0].Descriptor()
	// user.FirstNameValidator is a validator for the "first_name" field. It is called by the builders before save.
	user.FirstNameValidator = userDescFirstName.Validators[0].(func(string) error)
	// userDescLastName is the schema descriptor for last_name field.
	userDescLastName := userFields[1].Descriptor()
	// user.LastNameValidator is a validator for the "last_name" field. It is called by the builders before save.
	user.LastNameValidator = userDescLastName.Validators[0].(func(string) error)
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[2].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = userDescEmail.Validators[0].(func(string) error)
	// userDescPhone is the schema descriptor for phone field.
	userDescPhone := userFields[3].Descriptor()
	// user.PhoneValidator is a validator for the "phone" field. It is called by the builders before save.
	user.PhoneValidator = userDescPhone.Validators[0].(func(string) error)
	// userDescIsActive is the schema descriptor for is_active field.
	userDescIsActive := userFields[5].Descriptor()
	// user.DefaultIsActive holds the default value on creation for the is_active field.
	user.DefaultIsActive = userDescIsActive.Default.(bool)
	// userDescClinicName is the schema descriptor for clinic_name field.
	userDescClinicName := userFields[6].Descriptor()
	// user.ClinicNameValidator is a validator for the "clinic_name" field. It is called by the builders before save.
	user.ClinicNameValidator = userDescClinicName.Validators[0].(func(string) error)
	// userDescAddress is the schema descriptor for address field.
	userDescAddress := userFields[7].Descriptor()
	// user.AddressValidator is a validator for the "address" field. It is called by the builders before save.
	user.AddressValidator = userDescAddress.Validators[0].(func(string) error)
}
