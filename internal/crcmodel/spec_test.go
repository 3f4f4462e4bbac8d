package crcmodel

import (
	"math/big"
	"testing"
)

func TestSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantErr bool
	}{
		{
			name: "valid crc-32",
			spec: Spec{Width: 32, Poly: hexBig("04C11DB7"), Init: hexBig("FFFFFFFF"), XorOut: hexBig("FFFFFFFF")},
		},
		{
			name:    "width too large",
			spec:    Spec{Width: 200, Poly: big.NewInt(1), Init: big.NewInt(0), XorOut: big.NewInt(0)},
			wantErr: true,
		},
		{
			name:    "width zero",
			spec:    Spec{Width: 0, Poly: big.NewInt(1), Init: big.NewInt(0), XorOut: big.NewInt(0)},
			wantErr: true,
		},
		{
			name:    "even poly",
			spec:    Spec{Width: 8, Poly: big.NewInt(6), Init: big.NewInt(0), XorOut: big.NewInt(0)},
			wantErr: true,
		},
		{
			name:    "poly out of range",
			spec:    Spec{Width: 8, Poly: big.NewInt(0x101), Init: big.NewInt(0), XorOut: big.NewInt(0)},
			wantErr: true,
		},
		{
			name:    "missing init",
			spec:    Spec{Width: 8, Poly: big.NewInt(7), XorOut: big.NewInt(0)},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
