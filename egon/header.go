/*
 * Copyright 2025 Adrià Giménez Pastor.
 *
 * This file is part of adriagipas/sunxifw.
 *
 * adriagipas/sunxifw is free software: you can redistribute it and/or
 * modify it under the terms of the GNU General Public License as
 * published by the Free Software Foundation, either version 3 of the
 * License, or (at your option) any later version.
 *
 * adriagipas/sunxifw is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with adriagipas/sunxifw.  If not, see
 * <https://www.gnu.org/licenses/>.
 */
/*
 *  header.go - Capçaleres eGON (primària i secundària).
 *
 */

package egon;

import (
  "errors"
  "fmt"
  "io"
)


/*************/
/* CONSTANTS */
/*************/

const SECTOR_SIZE = 512

// Grandària de la capçalera primària. La capçalera declara la seua
// pròpia grandària i ha de coincidir exactament amb aquesta.
const HEADER_SIZE = 48

// El filesize sempre és múltiple d'aquest valor.
const FILESIZE_ALIGN = 4096

const MAGIC_BT0 = "eGON.BT0"
const MAGIC_BT1 = "eGON.BT1"

// Nombre de paraules del bloc de paràmetres de la DRAM en la
// capçalera secundària.
const DRAM_PARAM_COUNT = 32


/**********/
/* ERRORS */
/**********/

var ErrBadMagic = errors.New ( "wrong eGON header magic" )
var ErrHeaderSizeMismatch = errors.New ( "eGON header size mismatch" )
var ErrBadFilesizeAlignment = errors.New ( "eGON file size not aligned" )
var ErrEmptyImage = errors.New ( "eGON file is empty" )
var ErrTruncatedImage = errors.New ( "eGON image is truncated" )


/*********************/
/* FUNCIONS PRIVADES */
/*********************/

func _u32(data []byte) uint32 {
  return uint32(data[0]) |
    (uint32(data[1])<<8) |
    (uint32(data[2])<<16) |
    (uint32(data[3])<<24)
} // end _u32


// Torna una representació imprimible d'una etiqueta ASCII,
// substituint els bytes no imprimibles per punts.
func _tag(data []byte) string {
  buf := make ( []byte, len(data) )
  for i := 0; i < len(data); i++ {
    if data[i] >= 0x20 && data[i] <= 0x7e {
      buf[i]= data[i]
    } else {
      buf[i]= '.'
    }
  }
  return string(buf)
} // end _tag


/**********/
/* HEADER */
/**********/

// Capçalera primària d'una imatge eGON (boot0 o boot1). Ocupa els
// primers HEADER_SIZE bytes del primer sector.
type Header struct {

  Jump          uint32  // Instrucció de bot, no s'interpreta
  Magic         [8]byte // eGON.BT0 o eGON.BT1
  Checksum      uint32
  Filesize      uint32  // Grandària total de la imatge en bytes
  HeaderSize    uint32
  HeaderVersion [4]byte
  ReturnAddress uint32
  RunAddress    uint32
  EGONVersion   [4]byte
  PlatformInfo  [8]byte

}


// Llig i comprova la capçalera primària del primer sector d'una
// imatge eGON. Cada comprovació que falla escriu una línia de
// diagnòstic en el fitxer indicat i torna l'error corresponent.
func ReadHeader(sector []byte, file io.Writer) (*Header,error) {

  if len(sector) < SECTOR_SIZE {
    return nil,fmt.Errorf ( "sector is too small (%d bytes): %w",
      len(sector), ErrTruncatedImage )
  }

  // Desempaqueta
  ret := Header{}
  ret.Jump= _u32 ( sector[0:] )
  copy ( ret.Magic[:], sector[4:12] )
  ret.Checksum= _u32 ( sector[12:] )
  ret.Filesize= _u32 ( sector[16:] )
  ret.HeaderSize= _u32 ( sector[20:] )
  copy ( ret.HeaderVersion[:], sector[24:28] )
  ret.ReturnAddress= _u32 ( sector[28:] )
  ret.RunAddress= _u32 ( sector[32:] )
  copy ( ret.EGONVersion[:], sector[36:40] )
  copy ( ret.PlatformInfo[:], sector[40:48] )

  // Comprova el magic. Sols s'accepten les dues etiquetes conegudes,
  // comparades amb igualtat exacta.
  magic := string(ret.Magic[:])
  if magic != MAGIC_BT0 && magic != MAGIC_BT1 {
    fmt.Fprintf ( file, "\tERROR: wrong header magic: %s\n",
      _tag ( ret.Magic[:] ) )
    return nil,ErrBadMagic
  }

  // Comprova la grandària de la capçalera
  if ret.HeaderSize != HEADER_SIZE {
    fmt.Fprintf ( file, "\tERROR: egon header size mismatch: %d\n",
      ret.HeaderSize )
    return nil,ErrHeaderSizeMismatch
  }

  // Comprova el filesize
  if ret.Filesize%FILESIZE_ALIGN != 0 {
    fmt.Fprintf ( file, "\tERROR: boot0 file size not a multiple of"+
      " %d: %d bytes (0x%04X).\n", FILESIZE_ALIGN,
      ret.Filesize, ret.Filesize )
    return nil,ErrBadFilesizeAlignment
  }
  if ret.Filesize == 0 {
    fmt.Fprintf ( file, "\tERROR: boot0 file is supposedly empty:"+
      " 0x%04X.\n", ret.Filesize )
    return nil,ErrEmptyImage
  }

  return &ret,nil

} // end ReadHeader


// Nombre total de sectors que ocupa la imatge.
func (self *Header) SectorCount() uint32 {
  return self.Filesize/SECTOR_SIZE
} // end SectorCount


// Cert si la imatge és un boot1 (eGON.BT1) en lloc d'un boot0.
func (self *Header) IsBoot1() bool {
  return string(self.Magic[:]) == MAGIC_BT1
} // end IsBoot1


func (self *Header) PrintInfo(file io.Writer, prefix string) {

  // Preparació impressió
  F := fmt.Fprintf

  // Imprimeix
  F(file,"%sJUMP:           0x%08X\n",prefix,self.Jump)
  F(file,"%sMAGIC:          %s\n",prefix,_tag ( self.Magic[:] ))
  F(file,"%sCHECKSUM:       0x%08X\n",prefix,self.Checksum)
  F(file,"%sFILESIZE:       %d (%dkB)\n",prefix,
    self.Filesize,self.Filesize>>10)
  F(file,"%sHEADER SIZE:    %d\n",prefix,self.HeaderSize)
  F(file,"%sHEADER VERSION: %s\n",prefix,_tag ( self.HeaderVersion[:] ))
  F(file,"%sRETURN ADDRESS: 0x%08X\n",prefix,self.ReturnAddress)
  F(file,"%sRUN ADDRESS:    0x%08X\n",prefix,self.RunAddress)
  F(file,"%seGON VERSION:   %s\n",prefix,_tag ( self.EGONVersion[:] ))
  F(file,"%sPLATFORM INFO:  %s\n",prefix,_tag ( self.PlatformInfo[:] ))

} // end PrintInfo


/********************/
/* SECONDARY HEADER */
/********************/

// Capçalera secundària, situada just darrere de la capçalera
// primària. Sols s'interpreta el bloc de paràmetres de la DRAM; la
// resta de l'estructura s'ignora.
type SecondaryHeader struct {

  HeaderSize    uint32
  HeaderVersion [4]byte
  DramParam     [DRAM_PARAM_COUNT]uint32

}


// Llig la capçalera secundària del primer sector. offset és la
// grandària de la capçalera primària ja comprovada.
func ReadSecondaryHeader(

  sector []byte,
  offset uint32,

) (*SecondaryHeader,error) {

  end := int(offset) + 8 + DRAM_PARAM_COUNT*4
  if end > len(sector) {
    return nil,fmt.Errorf ( "secondary header out of bounds"+
      " (offset:%d): %w", offset, ErrTruncatedImage )
  }

  // Desempaqueta
  ret := SecondaryHeader{}
  data := sector[offset:]
  ret.HeaderSize= _u32 ( data[0:] )
  copy ( ret.HeaderVersion[:], data[4:8] )
  for i := 0; i < DRAM_PARAM_COUNT; i++ {
    ret.DramParam[i]= _u32 ( data[8+i*4:] )
  }

  return &ret,nil

} // end ReadSecondaryHeader
