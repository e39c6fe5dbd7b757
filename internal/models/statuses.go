package models

type UserRole string
type PaymentMethod string
type PaymentStatus string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleAssinante UserRole = "ASSINANTE"

	PaymentMethodCartaoCredito PaymentMethod = "CARTAO_CREDITO"
	PaymentMethodBoleto        PaymentMethod = "BOLETO"
	PaymentMethodPix           PaymentMethod = "PIX"
	PaymentMethodTransferencia PaymentMethod = "TRANSFERENCIA"

	PaymentStatusPending  PaymentStatus = "PENDENTE"
	PaymentStatusPaid     PaymentStatus = "PAGO"
	PaymentStatusFailed   PaymentStatus = "FALHOU"
	PaymentStatusRefunded PaymentStatus = "REEMBOLSADO"
)
