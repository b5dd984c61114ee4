package repository

import "sip-planner/domain"

type SIPRepository interface {
	Save(input domain.SIPInput, result domain.SIPResult) error
}
