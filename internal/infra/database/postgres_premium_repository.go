package database

import (
	"context"
	"database/sql"

	"okc_stats_sync/internal/domain/premium"

	"github.com/sirupsen/logrus"
)

const (
	specPremiumTable = "spec_premium"
	headPremiumTable = "head_premium"
)

var specPremiumColumns = []string{
	"fullname",
	"contacts_count",
	"csi",
	"csi_normative",
	"csi_normative_rate",
	"csi_premium",
	"csi_response",
	"csi_response_normative",
	"csi_response_normative_rate",
	"flr",
	"flr_normative",
	"flr_normative_rate",
	"flr_premium",
	"gok",
	"gok_normative",
	"gok_normative_rate",
	"gok_premium",
	"target",
	"target_type",
	"target_normative_first",
	"target_normative_second",
	"target_normative_rate_first",
	"target_normative_rate_second",
	"target_premium",
	"pers_target_manual",
	"discipline_premium",
	"tests_premium",
	"thanks_premium",
	"tutors_premium",
	"head_adjust_premium",
	"total_premium",
	"extraction_period",
}

var headPremiumColumns = []string{
	"fullname",
	"flr",
	"flr_normative",
	"flr_normative_rate",
	"flr_premium",
	"gok",
	"gok_normative",
	"gok_normative_rate",
	"gok_premium",
	"target",
	"target_type",
	"target_normative_first",
	"target_normative_second",
	"target_normative_rate_first",
	"target_normative_rate_second",
	"target_premium",
	"pers_target_manual",
	"sl",
	"sl_normative_first",
	"sl_normative_second",
	"sl_normative_rate_first",
	"sl_normative_rate_second",
	"sl_premium",
	"head_adjust_premium",
	"total_premium",
	"extraction_period",
}

type PostgresPremiumRepository struct {
	db  *sql.DB
	log *logrus.Entry
}

func NewPostgresPremiumRepository(db *sql.DB, log *logrus.Entry) *PostgresPremiumRepository {
	return &PostgresPremiumRepository{db: db, log: log}
}

func (r *PostgresPremiumRepository) ReplaceSpecialists(ctx context.Context, rows []*premium.SpecialistRow) (int64, error) {
	if len(rows) == 0 {
		r.log.Warnf("[%s] no premium rows to insert, skipping replace", specPremiumTable)
		return 0, nil
	}

	return replaceTable(ctx, r.db, r.log, specPremiumTable, specPremiumColumns, len(rows), func(add func(args ...any) error) error {
		for _, row := range rows {
			err := add(
				row.Fullname,
				row.ContactsCount,
				row.CSI,
				row.CSINormative,
				row.CSINormativeRate,
				row.CSIPremium,
				row.CSIResponse,
				row.CSIResponseNormative,
				row.CSIResponseNormativeRate,
				row.FLR,
				row.FLRNormative,
				row.FLRNormativeRate,
				row.FLRPremium,
				row.GOK,
				row.GOKNormative,
				row.GOKNormativeRate,
				row.GOKPremium,
				row.Target,
				row.TargetType,
				row.TargetNormativeFirst,
				row.TargetNormativeSecond,
				row.TargetNormativeRateFirst,
				row.TargetNormativeRateSecond,
				row.TargetPremium,
				row.PersTargetManual,
				row.DisciplinePremium,
				row.TestsPremium,
				row.ThanksPremium,
				row.TutorsPremium,
				row.HeadAdjustPremium,
				row.TotalPremium,
				row.ExtractionPeriod,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PostgresPremiumRepository) ReplaceHeads(ctx context.Context, rows []*premium.HeadRow) (int64, error) {
	if len(rows) == 0 {
		r.log.Warnf("[%s] no premium rows to insert, skipping replace", headPremiumTable)
		return 0, nil
	}

	return replaceTable(ctx, r.db, r.log, headPremiumTable, headPremiumColumns, len(rows), func(add func(args ...any) error) error {
		for _, row := range rows {
			err := add(
				row.Fullname,
				row.FLR,
				row.FLRNormative,
				row.FLRNormativeRate,
				row.FLRPremium,
				row.GOK,
				row.GOKNormative,
				row.GOKNormativeRate,
				row.GOKPremium,
				row.Target,
				row.TargetType,
				row.TargetNormativeFirst,
				row.TargetNormativeSecond,
				row.TargetNormativeRateFirst,
				row.TargetNormativeRateSecond,
				row.TargetPremium,
				row.PersTargetManual,
				row.SL,
				row.SLNormativeFirst,
				row.SLNormativeSecond,
				row.SLNormativeRateFirst,
				row.SLNormativeRateSecond,
				row.SLPremium,
				row.HeadAdjustPremium,
				row.TotalPremium,
				row.ExtractionPeriod,
			)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
