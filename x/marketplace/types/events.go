package types

// Event types for the marketplace module.
// All event types use lowercase with underscore separator (module_action format)
const (
	EventTypeProviderRegistered  = "marketplace_provider_registered"
	EventTypeProviderDeactivated = "marketplace_provider_deactivated"

	EventTypeJobPosted    = "marketplace_job_posted"
	EventTypeJobAssigned  = "marketplace_job_assigned"
	EventTypeJobStarted   = "marketplace_job_started"
	EventTypeJobCompleted = "marketplace_job_completed"

	EventTypePaymentReleased   = "marketplace_payment_released"
	EventTypeReputationUpdated = "marketplace_reputation_updated"

	EventTypePlatformFeeUpdated = "marketplace_platform_fee_updated"
)

// Event attribute keys for the marketplace module
const (
	AttributeKeyProvider = "provider"
	AttributeKeyClient   = "client"
	AttributeKeyJobId    = "job_id"

	AttributeKeyCpuCores     = "cpu_cores"
	AttributeKeyRamGb        = "ram_gb"
	AttributeKeyStorageGb    = "storage_gb"
	AttributeKeyPricePerHour = "price_per_hour"

	AttributeKeyTotalPayment    = "total_payment"
	AttributeKeyProviderPayment = "provider_payment"
	AttributeKeyPlatformFee     = "platform_fee"

	AttributeKeyReputation    = "reputation"
	AttributeKeyFeePercentage = "fee_percentage"
)
