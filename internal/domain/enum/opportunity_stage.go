package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// OpportunityStage represents the pipeline stage of an opportunity
type OpportunityStage int

const (
	OpportunityStageProspecting OpportunityStage = 0
	OpportunityStageProposal    OpportunityStage = 1
	OpportunityStageClosedWon   OpportunityStage = 2
	OpportunityStageClosedLost  OpportunityStage = 3
)

func (s OpportunityStage) String() string {
	return [...]string{"Prospecting", "Proposal", "Closed Won", "Closed Lost"}[s]
}

func (s OpportunityStage) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OpportunityStage) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OpportunityStage(i)
		return nil
	}
	switch str {
	case "Prospecting":
		*s = OpportunityStageProspecting
	case "Proposal":
		*s = OpportunityStageProposal
	case "Closed Won":
		*s = OpportunityStageClosedWon
	case "Closed Lost":
		*s = OpportunityStageClosedLost
	}
	return nil
}

func (s OpportunityStage) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *OpportunityStage) Scan(value interface{}) error {
	if value == nil {
		*s = OpportunityStageProspecting
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = OpportunityStage(v)
	case int:
		*s = OpportunityStage(v)
	}
	return nil
}
