package youtube

// Innertube 요청/응답 타입. 응답 JSON은 필요한 경로만 부분적으로 매핑한다.

type innertubeClient struct {
	ClientName    string `json:"clientName"`
	ClientVersion string `json:"clientVersion"`
	HL            string `json:"hl,omitempty"`
	GL            string `json:"gl,omitempty"`
}

type innertubeContext struct {
	Client innertubeClient `json:"client"`
}

type searchRequest struct {
	Context innertubeContext `json:"context"`
	Query   string           `json:"query"`
}

type playerRequest struct {
	Context innertubeContext `json:"context"`
	VideoID string           `json:"videoId"`
}

// runsText title/ownerText처럼 runs 또는 simpleText로 오는 텍스트
type runsText struct {
	Runs []struct {
		Text string `json:"text"`
	} `json:"runs"`
	SimpleText string `json:"simpleText"`
}

func (t runsText) text() string {
	if len(t.Runs) > 0 {
		return t.Runs[0].Text
	}
	return t.SimpleText
}

type thumbnailSet struct {
	Thumbnails []struct {
		URL string `json:"url"`
	} `json:"thumbnails"`
}

// first 첫 번째 썸네일 URL, 없으면 빈 문자열
func (t thumbnailSet) first() string {
	if len(t.Thumbnails) > 0 {
		return t.Thumbnails[0].URL
	}
	return ""
}

type videoRenderer struct {
	VideoID       string       `json:"videoId"`
	Title         runsText     `json:"title"`
	Thumbnail     thumbnailSet `json:"thumbnail"`
	LengthText    runsText     `json:"lengthText"`
	OwnerText     runsText     `json:"ownerText"`
	ViewCountText runsText     `json:"viewCountText"`
}

func (v *videoRenderer) toVideo() Video {
	return Video{
		ID:        v.VideoID,
		Title:     v.Title.text(),
		Thumbnail: v.Thumbnail.first(),
		Duration:  v.LengthText.text(),
		Channel:   v.OwnerText.text(),
		Views:     v.ViewCountText.text(),
	}
}

type searchResponse struct {
	Contents struct {
		TwoColumnSearchResultsRenderer struct {
			PrimaryContents struct {
				SectionListRenderer struct {
					Contents []struct {
						ItemSectionRenderer struct {
							Contents []struct {
								VideoRenderer *videoRenderer `json:"videoRenderer"`
							} `json:"contents"`
						} `json:"itemSectionRenderer"`
					} `json:"contents"`
				} `json:"sectionListRenderer"`
			} `json:"primaryContents"`
		} `json:"twoColumnSearchResultsRenderer"`
	} `json:"contents"`
}

type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
	} `json:"playabilityStatus"`
	VideoDetails *struct {
		VideoID       string       `json:"videoId"`
		Title         string       `json:"title"`
		LengthSeconds string       `json:"lengthSeconds"`
		Author        string       `json:"author"`
		ViewCount     string       `json:"viewCount"`
		Thumbnail     thumbnailSet `json:"thumbnail"`
	} `json:"videoDetails"`
}
