// Code generated by ent, DO NOT EDIT.

package llmjudgement

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/echoman-project/echoman/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldID, id))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldErrorMessage, v))
}

// LatencyMs applies equality check predicate on the "latency_ms" field. It's identical to LatencyMsEQ.
func LatencyMs(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldLatencyMs, v))
}

// TokensPrompt applies equality check predicate on the "tokens_prompt" field. It's identical to TokensPromptEQ.
func TokensPrompt(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldTokensPrompt, v))
}

// TokensCompletion applies equality check predicate on the "tokens_completion" field. It's identical to TokensCompletionEQ.
func TokensCompletion(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldTokensCompletion, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldProvider, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldModel, v))
}

// RunID applies equality check predicate on the "run_id" field. It's identical to RunIDEQ.
func RunID(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldRunID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldCreatedAt, v))
}

// JudgementTypeEQ applies the EQ predicate on the "judgement_type" field.
func JudgementTypeEQ(v JudgementType) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldJudgementType, v))
}

// JudgementTypeNEQ applies the NEQ predicate on the "judgement_type" field.
func JudgementTypeNEQ(v JudgementType) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldJudgementType, v))
}

// JudgementTypeIn applies the In predicate on the "judgement_type" field.
func JudgementTypeIn(vs ...JudgementType) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldJudgementType, vs...))
}

// JudgementTypeNotIn applies the NotIn predicate on the "judgement_type" field.
func JudgementTypeNotIn(vs ...JudgementType) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldJudgementType, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldStatus, vs...))
}

// RequestIsNil applies the IsNil predicate on the "request" field.
func RequestIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldRequest))
}

// RequestNotNil applies the NotNil predicate on the "request" field.
func RequestNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldRequest))
}

// ResponseIsNil applies the IsNil predicate on the "response" field.
func ResponseIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldResponse))
}

// ResponseNotNil applies the NotNil predicate on the "response" field.
func ResponseNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldResponse))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContainsFold(FieldErrorMessage, v))
}

// LatencyMsEQ applies the EQ predicate on the "latency_ms" field.
func LatencyMsEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldLatencyMs, v))
}

// LatencyMsNEQ applies the NEQ predicate on the "latency_ms" field.
func LatencyMsNEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldLatencyMs, v))
}

// LatencyMsIn applies the In predicate on the "latency_ms" field.
func LatencyMsIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldLatencyMs, vs...))
}

// LatencyMsNotIn applies the NotIn predicate on the "latency_ms" field.
func LatencyMsNotIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldLatencyMs, vs...))
}

// LatencyMsGT applies the GT predicate on the "latency_ms" field.
func LatencyMsGT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldLatencyMs, v))
}

// LatencyMsGTE applies the GTE predicate on the "latency_ms" field.
func LatencyMsGTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldLatencyMs, v))
}

// LatencyMsLT applies the LT predicate on the "latency_ms" field.
func LatencyMsLT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldLatencyMs, v))
}

// LatencyMsLTE applies the LTE predicate on the "latency_ms" field.
func LatencyMsLTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldLatencyMs, v))
}

// LatencyMsIsNil applies the IsNil predicate on the "latency_ms" field.
func LatencyMsIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldLatencyMs))
}

// LatencyMsNotNil applies the NotNil predicate on the "latency_ms" field.
func LatencyMsNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldLatencyMs))
}

// TokensPromptEQ applies the EQ predicate on the "tokens_prompt" field.
func TokensPromptEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldTokensPrompt, v))
}

// TokensPromptNEQ applies the NEQ predicate on the "tokens_prompt" field.
func TokensPromptNEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldTokensPrompt, v))
}

// TokensPromptIn applies the In predicate on the "tokens_prompt" field.
func TokensPromptIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldTokensPrompt, vs...))
}

// TokensPromptNotIn applies the NotIn predicate on the "tokens_prompt" field.
func TokensPromptNotIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldTokensPrompt, vs...))
}

// TokensPromptGT applies the GT predicate on the "tokens_prompt" field.
func TokensPromptGT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldTokensPrompt, v))
}

// TokensPromptGTE applies the GTE predicate on the "tokens_prompt" field.
func TokensPromptGTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldTokensPrompt, v))
}

// TokensPromptLT applies the LT predicate on the "tokens_prompt" field.
func TokensPromptLT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldTokensPrompt, v))
}

// TokensPromptLTE applies the LTE predicate on the "tokens_prompt" field.
func TokensPromptLTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldTokensPrompt, v))
}

// TokensPromptIsNil applies the IsNil predicate on the "tokens_prompt" field.
func TokensPromptIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldTokensPrompt))
}

// TokensPromptNotNil applies the NotNil predicate on the "tokens_prompt" field.
func TokensPromptNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldTokensPrompt))
}

// TokensCompletionEQ applies the EQ predicate on the "tokens_completion" field.
func TokensCompletionEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldTokensCompletion, v))
}

// TokensCompletionNEQ applies the NEQ predicate on the "tokens_completion" field.
func TokensCompletionNEQ(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldTokensCompletion, v))
}

// TokensCompletionIn applies the In predicate on the "tokens_completion" field.
func TokensCompletionIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldTokensCompletion, vs...))
}

// TokensCompletionNotIn applies the NotIn predicate on the "tokens_completion" field.
func TokensCompletionNotIn(vs ...int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldTokensCompletion, vs...))
}

// TokensCompletionGT applies the GT predicate on the "tokens_completion" field.
func TokensCompletionGT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldTokensCompletion, v))
}

// TokensCompletionGTE applies the GTE predicate on the "tokens_completion" field.
func TokensCompletionGTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldTokensCompletion, v))
}

// TokensCompletionLT applies the LT predicate on the "tokens_completion" field.
func TokensCompletionLT(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldTokensCompletion, v))
}

// TokensCompletionLTE applies the LTE predicate on the "tokens_completion" field.
func TokensCompletionLTE(v int) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldTokensCompletion, v))
}

// TokensCompletionIsNil applies the IsNil predicate on the "tokens_completion" field.
func TokensCompletionIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldTokensCompletion))
}

// TokensCompletionNotNil applies the NotNil predicate on the "tokens_completion" field.
func TokensCompletionNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldTokensCompletion))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContainsFold(FieldProvider, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContainsFold(FieldModel, v))
}

// RunIDEQ applies the EQ predicate on the "run_id" field.
func RunIDEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldRunID, v))
}

// RunIDNEQ applies the NEQ predicate on the "run_id" field.
func RunIDNEQ(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldRunID, v))
}

// RunIDIn applies the In predicate on the "run_id" field.
func RunIDIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldRunID, vs...))
}

// RunIDNotIn applies the NotIn predicate on the "run_id" field.
func RunIDNotIn(vs ...string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldRunID, vs...))
}

// RunIDGT applies the GT predicate on the "run_id" field.
func RunIDGT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldRunID, v))
}

// RunIDGTE applies the GTE predicate on the "run_id" field.
func RunIDGTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldRunID, v))
}

// RunIDLT applies the LT predicate on the "run_id" field.
func RunIDLT(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldRunID, v))
}

// RunIDLTE applies the LTE predicate on the "run_id" field.
func RunIDLTE(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldRunID, v))
}

// RunIDContains applies the Contains predicate on the "run_id" field.
func RunIDContains(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContains(FieldRunID, v))
}

// RunIDHasPrefix applies the HasPrefix predicate on the "run_id" field.
func RunIDHasPrefix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasPrefix(FieldRunID, v))
}

// RunIDHasSuffix applies the HasSuffix predicate on the "run_id" field.
func RunIDHasSuffix(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldHasSuffix(FieldRunID, v))
}

// RunIDIsNil applies the IsNil predicate on the "run_id" field.
func RunIDIsNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIsNull(FieldRunID))
}

// RunIDNotNil applies the NotNil predicate on the "run_id" field.
func RunIDNotNil() predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotNull(FieldRunID))
}

// RunIDEqualFold applies the EqualFold predicate on the "run_id" field.
func RunIDEqualFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEqualFold(FieldRunID, v))
}

// RunIDContainsFold applies the ContainsFold predicate on the "run_id" field.
func RunIDContainsFold(v string) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldContainsFold(FieldRunID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.LLMJudgement) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.LLMJudgement) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.LLMJudgement) predicate.LLMJudgement {
	return predicate.LLMJudgement(sql.NotPredicates(p))
}
