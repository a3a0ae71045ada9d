// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/echoman-project/echoman/ent/categorydaymetrics"
	"github.com/echoman-project/echoman/ent/ingestrun"
	"github.com/echoman-project/echoman/ent/pipelinerun"
	"github.com/echoman-project/echoman/ent/schema"
	"github.com/echoman-project/echoman/ent/sourceitem"
	"github.com/echoman-project/echoman/ent/topic"
	"github.com/echoman-project/echoman/ent/topicperiodheat"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categorydaymetricsFields := schema.CategoryDayMetrics{}.Fields()
	_ = categorydaymetricsFields
	// categorydaymetricsDescTopicCount is the schema descriptor for topic_count field.
	categorydaymetricsDescTopicCount := categorydaymetricsFields[2].Descriptor()
	// categorydaymetrics.DefaultTopicCount holds the default value on creation for the topic_count field.
	categorydaymetrics.DefaultTopicCount = categorydaymetricsDescTopicCount.Default.(int)
	// categorydaymetricsDescActiveTopicCount is the schema descriptor for active_topic_count field.
	categorydaymetricsDescActiveTopicCount := categorydaymetricsFields[3].Descriptor()
	// categorydaymetrics.DefaultActiveTopicCount holds the default value on creation for the active_topic_count field.
	categorydaymetrics.DefaultActiveTopicCount = categorydaymetricsDescActiveTopicCount.Default.(int)
	// categorydaymetricsDescIntensitySum is the schema descriptor for intensity_sum field.
	categorydaymetricsDescIntensitySum := categorydaymetricsFields[6].Descriptor()
	// categorydaymetrics.DefaultIntensitySum holds the default value on creation for the intensity_sum field.
	categorydaymetrics.DefaultIntensitySum = categorydaymetricsDescIntensitySum.Default.(int)
	ingestrunFields := schema.IngestRun{}.Fields()
	_ = ingestrunFields
	// ingestrunDescPlatformCount is the schema descriptor for platform_count field.
	ingestrunDescPlatformCount := ingestrunFields[6].Descriptor()
	// ingestrun.DefaultPlatformCount holds the default value on creation for the platform_count field.
	ingestrun.DefaultPlatformCount = ingestrunDescPlatformCount.Default.(int)
	// ingestrunDescPlatformSuccess is the schema descriptor for platform_success field.
	ingestrunDescPlatformSuccess := ingestrunFields[7].Descriptor()
	// ingestrun.DefaultPlatformSuccess holds the default value on creation for the platform_success field.
	ingestrun.DefaultPlatformSuccess = ingestrunDescPlatformSuccess.Default.(int)
	// ingestrunDescItemCount is the schema descriptor for item_count field.
	ingestrunDescItemCount := ingestrunFields[8].Descriptor()
	// ingestrun.DefaultItemCount holds the default value on creation for the item_count field.
	ingestrun.DefaultItemCount = ingestrunDescItemCount.Default.(int)
	// ingestrunDescNewItemCount is the schema descriptor for new_item_count field.
	ingestrunDescNewItemCount := ingestrunFields[9].Descriptor()
	// ingestrun.DefaultNewItemCount holds the default value on creation for the new_item_count field.
	ingestrun.DefaultNewItemCount = ingestrunDescNewItemCount.Default.(int)
	pipelinerunFields := schema.PipelineRun{}.Fields()
	_ = pipelinerunFields
	// pipelinerunDescInputCount is the schema descriptor for input_count field.
	pipelinerunDescInputCount := pipelinerunFields[7].Descriptor()
	// pipelinerun.DefaultInputCount holds the default value on creation for the input_count field.
	pipelinerun.DefaultInputCount = pipelinerunDescInputCount.Default.(int)
	// pipelinerunDescOutputCount is the schema descriptor for output_count field.
	pipelinerunDescOutputCount := pipelinerunFields[8].Descriptor()
	// pipelinerun.DefaultOutputCount holds the default value on creation for the output_count field.
	pipelinerun.DefaultOutputCount = pipelinerunDescOutputCount.Default.(int)
	// pipelinerunDescSuccessCount is the schema descriptor for success_count field.
	pipelinerunDescSuccessCount := pipelinerunFields[9].Descriptor()
	// pipelinerun.DefaultSuccessCount holds the default value on creation for the success_count field.
	pipelinerun.DefaultSuccessCount = pipelinerunDescSuccessCount.Default.(int)
	// pipelinerunDescFailedCount is the schema descriptor for failed_count field.
	pipelinerunDescFailedCount := pipelinerunFields[10].Descriptor()
	// pipelinerun.DefaultFailedCount holds the default value on creation for the failed_count field.
	pipelinerun.DefaultFailedCount = pipelinerunDescFailedCount.Default.(int)
	sourceitemFields := schema.SourceItem{}.Fields()
	_ = sourceitemFields
	// sourceitemDescOccurrenceCount is the schema descriptor for occurrence_count field.
	sourceitemDescOccurrenceCount := sourceitemFields[14].Descriptor()
	// sourceitem.DefaultOccurrenceCount holds the default value on creation for the occurrence_count field.
	sourceitem.DefaultOccurrenceCount = sourceitemDescOccurrenceCount.Default.(int)
	// sourceitemDescCreatedAt is the schema descriptor for created_at field.
	sourceitemDescCreatedAt := sourceitemFields[18].Descriptor()
	// sourceitem.DefaultCreatedAt holds the default value on creation for the created_at field.
	sourceitem.DefaultCreatedAt = sourceitemDescCreatedAt.Default.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescIntensityTotal is the schema descriptor for intensity_total field.
	topicDescIntensityTotal := topicFields[4].Descriptor()
	// topic.DefaultIntensityTotal holds the default value on creation for the intensity_total field.
	topic.DefaultIntensityTotal = topicDescIntensityTotal.Default.(int)
	topicperiodheatFields := schema.TopicPeriodHeat{}.Fields()
	_ = topicperiodheatFields
	// topicperiodheatDescSourceCount is the schema descriptor for source_count field.
	topicperiodheatDescSourceCount := topicperiodheatFields[5].Descriptor()
	// topicperiodheat.DefaultSourceCount holds the default value on creation for the source_count field.
	topicperiodheat.DefaultSourceCount = topicperiodheatDescSourceCount.Default.(int)
}
