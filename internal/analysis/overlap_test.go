package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tool(name, desc string) ToolDefinition {
	return ToolDefinition{Name: name, Description: desc}
}

func TestFindOverlaps_SimilarNames(t *testing.T) {
	tools := []ToolDefinition{
		tool("search_nearby_restaurants", "Locate dining options around a point"),
		tool("find_nearby_restaurants", "Discover eateries close to coordinates"),
	}

	overlaps := FindOverlaps(tools)
	require.Len(t, overlaps, 1)
	assert.Equal(t, "search_nearby_restaurants", overlaps[0].ToolA)
	assert.Equal(t, "find_nearby_restaurants", overlaps[0].ToolB)
	assert.Equal(t, OverlapSimilarNames, overlaps[0].Reason)
}

func TestFindOverlaps_GetWeatherGetForecast(t *testing.T) {
	// "get" is a stopword, leaving {weather} and {forecast} with no
	// intersection.
	tools := []ToolDefinition{
		tool("get_weather", ""),
		tool("get_forecast", ""),
	}
	assert.Empty(t, FindOverlaps(tools))
}

func TestFindOverlaps_ExactlyHalfSharedNotFlagged(t *testing.T) {
	// One shared word out of two on each side is a ratio of exactly 0.5;
	// the check is strictly greater-than.
	tools := []ToolDefinition{
		tool("search_restaurants", ""),
		tool("find_restaurants", ""),
	}
	assert.Empty(t, FindOverlaps(tools))
}

func TestFindOverlaps_NameStopwordsIgnored(t *testing.T) {
	tools := []ToolDefinition{
		tool("get_weather", "Forecast conditions for a city"),
		tool("get_stock_price", "Quote current market numbers"),
	}
	assert.Empty(t, FindOverlaps(tools))
}

func TestFindOverlaps_SharedWordBelowHalf(t *testing.T) {
	// One shared word against three significant words on the longer name.
	tools := []ToolDefinition{
		tool("weather_current", "Report conditions right now"),
		tool("weather_forecast_hourly", "Project outlook going forward"),
	}
	assert.Empty(t, FindOverlaps(tools))
}

func TestFindOverlaps_HyphensAndDotsNormalized(t *testing.T) {
	tools := []ToolDefinition{
		tool("fetch-user-profile", ""),
		tool("fetch.user.record", ""),
	}

	overlaps := FindOverlaps(tools)
	require.Len(t, overlaps, 1)
	assert.Equal(t, OverlapSimilarNames, overlaps[0].Reason)
}

func TestFindOverlaps_SimilarDescriptions(t *testing.T) {
	tools := []ToolDefinition{
		tool("query_kb", "search knowledge base for articles"),
		tool("lookup_docs", "search knowledge base for answers"),
	}

	overlaps := FindOverlaps(tools)
	require.Len(t, overlaps, 1)
	assert.Equal(t, OverlapSimilarDescriptions, overlaps[0].Reason)
}

func TestFindOverlaps_NamePrecedesDescription(t *testing.T) {
	// Both checks would fire; only the name reason is reported.
	tools := []ToolDefinition{
		tool("search_local_files", "search files on disk quickly"),
		tool("search_files", "search files on disk thoroughly"),
	}

	overlaps := FindOverlaps(tools)
	require.Len(t, overlaps, 1)
	assert.Equal(t, OverlapSimilarNames, overlaps[0].Reason)
}

func TestFindOverlaps_EmptyDescriptionsSkipped(t *testing.T) {
	tools := []ToolDefinition{
		tool("alpha_runner", ""),
		tool("beta_walker", ""),
	}
	assert.Empty(t, FindOverlaps(tools))
}

func TestFindOverlaps_MixedReasons(t *testing.T) {
	tools := []ToolDefinition{
		tool("send_email_message", "deliver electronic mail"),
		tool("send_sms_message", "transmit short texts"),
		tool("resize_image", "scale raster picture dimensions proportionally"),
		tool("crop_photo", "scale raster picture dimensions destructively"),
	}

	overlaps := FindOverlaps(tools)
	require.Len(t, overlaps, 2)
	assert.Equal(t, OverlapPair{"send_email_message", "send_sms_message", OverlapSimilarNames}, overlaps[0])
	assert.Equal(t, OverlapPair{"resize_image", "crop_photo", OverlapSimilarDescriptions}, overlaps[1])
}

func TestFindOverlaps_NoTools(t *testing.T) {
	assert.Empty(t, FindOverlaps(nil))
	assert.Empty(t, FindOverlaps([]ToolDefinition{tool("lonely_tool", "does things")}))
}
