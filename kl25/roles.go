package kl25

// SPI pin roles. A pin may carry MOSI on one alternate and MISO on another.

func (PTA15) SckAlt(SPI0) Alternate  { return Alt2 }
func (PTA16) MosiAlt(SPI0) Alternate { return Alt2 }
func (PTA16) MisoAlt(SPI0) Alternate { return Alt5 }
func (PTA17) MisoAlt(SPI0) Alternate { return Alt2 }
func (PTA17) MosiAlt(SPI0) Alternate { return Alt5 }

func (PTB11) SckAlt(SPI1) Alternate  { return Alt2 }
func (PTB16) MosiAlt(SPI1) Alternate { return Alt2 }
func (PTB16) MisoAlt(SPI1) Alternate { return Alt5 }
func (PTB17) MisoAlt(SPI1) Alternate { return Alt2 }
func (PTB17) MosiAlt(SPI1) Alternate { return Alt5 }

func (PTC5) SckAlt(SPI0) Alternate  { return Alt2 }
func (PTC6) MosiAlt(SPI0) Alternate { return Alt2 }
func (PTC6) MisoAlt(SPI0) Alternate { return Alt5 }
func (PTC7) MisoAlt(SPI0) Alternate { return Alt2 }
func (PTC7) MosiAlt(SPI0) Alternate { return Alt5 }

func (PTD1) SckAlt(SPI0) Alternate  { return Alt2 }
func (PTD2) MosiAlt(SPI0) Alternate { return Alt2 }
func (PTD2) MisoAlt(SPI0) Alternate { return Alt5 }
func (PTD3) MisoAlt(SPI0) Alternate { return Alt2 }
func (PTD3) MosiAlt(SPI0) Alternate { return Alt5 }

func (PTD5) SckAlt(SPI1) Alternate  { return Alt2 }
func (PTD6) MosiAlt(SPI1) Alternate { return Alt2 }
func (PTD6) MisoAlt(SPI1) Alternate { return Alt5 }
func (PTD7) MisoAlt(SPI1) Alternate { return Alt2 }
func (PTD7) MosiAlt(SPI1) Alternate { return Alt5 }

func (PTE1) MosiAlt(SPI1) Alternate { return Alt2 }
func (PTE1) MisoAlt(SPI1) Alternate { return Alt5 }
func (PTE2) SckAlt(SPI1) Alternate  { return Alt2 }
func (PTE3) MisoAlt(SPI1) Alternate { return Alt2 }
func (PTE3) MosiAlt(SPI1) Alternate { return Alt5 }

// Timer channel outputs.

func (PTA0) TimerAlt(TPM0, Ch5) Alternate  { return Alt3 }
func (PTA1) TimerAlt(TPM2, Ch0) Alternate  { return Alt3 }
func (PTA2) TimerAlt(TPM2, Ch1) Alternate  { return Alt3 }
func (PTA3) TimerAlt(TPM0, Ch0) Alternate  { return Alt3 }
func (PTA4) TimerAlt(TPM0, Ch1) Alternate  { return Alt3 }
func (PTA5) TimerAlt(TPM0, Ch2) Alternate  { return Alt3 }
func (PTA12) TimerAlt(TPM1, Ch0) Alternate { return Alt3 }
func (PTA13) TimerAlt(TPM1, Ch1) Alternate { return Alt3 }

func (PTB0) TimerAlt(TPM1, Ch0) Alternate  { return Alt3 }
func (PTB1) TimerAlt(TPM1, Ch1) Alternate  { return Alt3 }
func (PTB2) TimerAlt(TPM2, Ch0) Alternate  { return Alt3 }
func (PTB3) TimerAlt(TPM2, Ch1) Alternate  { return Alt3 }
func (PTB18) TimerAlt(TPM2, Ch0) Alternate { return Alt3 }
func (PTB19) TimerAlt(TPM2, Ch1) Alternate { return Alt3 }

func (PTC1) TimerAlt(TPM0, Ch0) Alternate { return Alt4 }
func (PTC2) TimerAlt(TPM0, Ch1) Alternate { return Alt4 }
func (PTC3) TimerAlt(TPM0, Ch2) Alternate { return Alt4 }
func (PTC4) TimerAlt(TPM0, Ch3) Alternate { return Alt4 }
func (PTC8) TimerAlt(TPM0, Ch4) Alternate { return Alt3 }
func (PTC9) TimerAlt(TPM0, Ch5) Alternate { return Alt3 }

func (PTD0) TimerAlt(TPM0, Ch0) Alternate { return Alt4 }
func (PTD1) TimerAlt(TPM0, Ch1) Alternate { return Alt4 }
func (PTD2) TimerAlt(TPM0, Ch2) Alternate { return Alt4 }
func (PTD3) TimerAlt(TPM0, Ch3) Alternate { return Alt4 }
func (PTD4) TimerAlt(TPM0, Ch4) Alternate { return Alt4 }
func (PTD5) TimerAlt(TPM0, Ch5) Alternate { return Alt4 }

func (PTE20) TimerAlt(TPM1, Ch0) Alternate { return Alt3 }
func (PTE21) TimerAlt(TPM1, Ch1) Alternate { return Alt3 }
func (PTE22) TimerAlt(TPM2, Ch0) Alternate { return Alt3 }
func (PTE23) TimerAlt(TPM2, Ch1) Alternate { return Alt3 }
func (PTE24) TimerAlt(TPM0, Ch0) Alternate { return Alt3 }
func (PTE25) TimerAlt(TPM0, Ch1) Alternate { return Alt3 }
func (PTE29) TimerAlt(TPM0, Ch2) Alternate { return Alt3 }
func (PTE30) TimerAlt(TPM0, Ch3) Alternate { return Alt3 }
func (PTE31) TimerAlt(TPM0, Ch4) Alternate { return Alt3 }
